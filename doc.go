// Package stocks provides the types and functions to track a personal list of
// stock positions in a local, human-readable JSON file.
//
// The core functionalities include:
//   - Position Store: a mapping from a stock symbol to the number of shares
//     held and their purchase price, loaded from and saved to a JSON file.
//   - Profit and Loss: the gain or loss of a position against a current price,
//     computed with exact decimal arithmetic.
//   - Reports: a portfolio view of all positions valued at user supplied
//     quotes, with totals and the change against the cost basis.
//   - Import: reading positions out of any JSON document, including the list
//     format of older tracking scripts, using jsonpath expressions.
//
// This package serves as the foundational logic for the `stk` command-line
// tool. It never reaches the network: current prices always come from the user.
package stocks
