package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SubmitPaymentProof confirms a staged order through the manual bank
// transfer variant: the proof image is uploaded first and the order is
// completed only once the upload produced a durable reference.
func (h *Handler) SubmitPaymentProof(c *gin.Context) {
	store, cartID, ok := h.loadCart(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("proof")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "proof of payment image is required"})
		return
	}
	defer file.Close()

	pending, err := h.Stager.TakePending(c.Request.Context(), cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}
	if pending == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no order awaiting payment", "redirect": "/"})
		return
	}

	confirmed, err := h.Orders.ConfirmWithProof(c.Request.Context(), *pending, file)
	if err != nil {
		// Upload or persistence failed: the order stays PENDING so the
		// customer can retry.
		if serr := h.Stager.StagePending(c.Request.Context(), cartID, *pending); serr != nil {
			log.Printf("Failed to restage pending order %s: %v", pending.OrderNumber, serr)
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save proof of payment, please try again"})
		return
	}

	if err := h.Stager.StageConfirmed(c.Request.Context(), cartID, confirmed); err != nil {
		log.Printf("Failed to stage confirmed order %s: %v", confirmed.OrderNumber, err)
	}
	if err := store.Clear(c.Request.Context()); err != nil {
		log.Printf("Failed to clear cart %s: %v", cartID, err)
	}
	if err := h.Mailer.SendOrderConfirmation(c.Request.Context(), confirmed); err != nil {
		log.Printf("Failed to send confirmation email for order %s: %v", confirmed.OrderNumber, err)
	}

	c.JSON(http.StatusOK, gin.H{"order": confirmed})
}
