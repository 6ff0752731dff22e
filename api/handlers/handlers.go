package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"powsim/blockchain"
	"powsim/node"
)

// Fixed status strings the presentation layer shows for chain validity.
const (
	StatusChainValid   = "Chain is valid."
	StatusChainInvalid = "Chain is invalid!"
)

// Handler serves the boundary endpoints over one application context.
type Handler struct {
	app *node.App
}

// New creates a Handler.
func New(app *node.App) *Handler {
	return &Handler{app: app}
}

// MineBlock handles POST /api/v1/mine.
func (h *Handler) MineBlock(c *gin.Context) {
	var req MineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mine request: " + err.Error()})
		return
	}

	txs := make([]blockchain.Transaction, len(req.Transactions))
	for i, in := range req.Transactions {
		txs[i] = blockchain.Transaction{
			Sender:    in.Sender,
			Recipient: in.Recipient,
			Amount:    *in.Amount,
		}
	}

	block, err := h.app.MineBlock(c.Request.Context(), txs, req.Difficulty)
	if err != nil {
		if c.Request.Context().Err() != nil {
			// Client went away; the search stopped at a yield point.
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "mining canceled: " + err.Error()})
			return
		}
		slog.Error("mining failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mining failed"})
		return
	}

	c.JSON(http.StatusCreated, NewBlockView(block))
}

// GetChain handles GET /api/v1/chain.
func (h *Handler) GetChain(c *gin.Context) {
	chain := h.app.Chain()
	c.JSON(http.StatusOK, gin.H{
		"difficulty": chain.Difficulty,
		"height":     len(chain.Blocks),
		"blocks":     NewChainView(chain),
	})
}

// ValidateChain handles GET /api/v1/chain/validate.
func (h *Handler) ValidateChain(c *gin.Context) {
	if err := h.app.ValidateChain(); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"valid":  false,
			"status": StatusChainInvalid,
			"reason": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":  true,
		"status": StatusChainValid,
	})
}

// SyncNetwork handles POST /api/v1/network/sync. After a successful
// sync every node is reported "synced" regardless of whether its chain
// actually changed.
func (h *Handler) SyncNetwork(c *gin.Context) {
	if err := h.app.SyncNetwork(); err != nil {
		slog.Error("network sync failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "network sync failed"})
		return
	}

	nodes := h.app.Network().Nodes()
	views := make([]NodeView, len(nodes))
	for i, n := range nodes {
		views[i] = NewNodeView(n, "synced")
	}
	c.JSON(http.StatusOK, gin.H{"nodes": views})
}

// GetNodes handles GET /api/v1/network/nodes.
func (h *Handler) GetNodes(c *gin.Context) {
	nodes := h.app.Network().Nodes()
	views := make([]NodeView, len(nodes))
	for i, n := range nodes {
		views[i] = NewNodeView(n, "idle")
	}
	c.JSON(http.StatusOK, gin.H{"nodes": views})
}
