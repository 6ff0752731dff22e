package handlers

// TransactionInput is one boundary-side transaction. Amount is a pointer
// so a missing field is distinguishable from an explicit zero; its sign
// is deliberately unconstrained.
type TransactionInput struct {
	Sender    string   `json:"sender" binding:"required"`
	Recipient string   `json:"recipient" binding:"required"`
	Amount    *float64 `json:"amount" binding:"required"`
}

// MineRequest is the mine-block boundary contract. The transaction list
// must be present but may be empty; difficulty must land in [1,5].
// Anything malformed is rejected here and never reaches the core.
type MineRequest struct {
	Transactions []TransactionInput `json:"transactions" binding:"required,dive"`
	Difficulty   int                `json:"difficulty" binding:"required,min=1,max=5"`
}
