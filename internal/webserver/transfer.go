package webserver

import (
	"fmt"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"github.com/Tharlwin/nitroshare-go/internal/coordinator"
	"github.com/Tharlwin/nitroshare-go/internal/notify"
)

type transferHandler struct {
	svc *coordinator.Service
}

type TransferItem struct {
	ID        int64  `json:"id"`
	Direction string `json:"direction"`
	Remote    string `json:"remote"`
	Phase     string `json:"phase"`
	Progress  int    `json:"progress"`
}

func toTransferItem(s coordinator.Status) TransferItem {
	return TransferItem{
		ID:        int64(s.ID),
		Direction: s.Direction.String(),
		Remote:    s.Remote,
		Phase:     s.Phase.String(),
		Progress:  s.Percent,
	}
}

func parseID(c *gin.Context) (notify.ID, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, fmt.Sprintf("Transfer ID '%s' is not a positive integer", raw))
		return notify.None, false
	}
	return notify.ID(id), true
}

func (h *transferHandler) listTransfers(c *gin.Context) {
	statuses := h.svc.Transfers()
	items := make([]TransferItem, 0, len(statuses))
	for _, s := range statuses {
		items = append(items, toTransferItem(s))
	}
	c.JSON(http.StatusOK, gin.H{
		"total":     len(items),
		"transfers": items,
	})
}

func (h *transferHandler) getTransfer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	status, found := h.svc.Transfer(id)
	if !found {
		c.String(http.StatusNotFound, fmt.Sprintf("No transfer with id '%d'", id))
		return
	}
	c.JSON(http.StatusOK, toTransferItem(status))
}

// stopTransfer is fire-and-forget: stopping an unknown or already finished
// transfer is not an error, the signal is simply dropped.
func (h *transferHandler) stopTransfer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.svc.StopTransfer(id)
	c.JSON(http.StatusAccepted, gin.H{
		"id":     int64(id),
		"status": "stop requested",
	})
}
