/*

This is a custom type for tokens which carries what a pool row needs to label and link a token.

*/

package types

type Token struct {
	Symbol   string `json:"symbol"`   // e.g., "CAKE"
	Address  string `json:"address"`  // e.g., "0x0e09...cE82"
	Decimals int    `json:"decimals"` // e.g., 18
}
