package orders

import (
	"context"
	"log"

	"trexstore/cart"
	"trexstore/email"
	"trexstore/models"
	"trexstore/payment"
)

// ReconcileState is the reconciler's terminal state for one confirmation
// page load.
type ReconcileState string

const (
	StateConfirmed ReconcileState = "CONFIRMED"
	StateRejected  ReconcileState = "REJECTED"
)

// ReconcileResult is what the confirmation page shows.
type ReconcileResult struct {
	State ReconcileState
	// Order is set only when State is CONFIRMED.
	Order *models.Order
}

// Reconciler decides, on return from the hosted payment page, whether
// payment succeeded and materializes the confirmed order.
type Reconciler struct {
	Gateway payment.Gateway
	Orders  *Service
	Stager  Stager
	Mailer  email.Sender
}

// NewReconciler wires the reconciler.
func NewReconciler(gateway payment.Gateway, svc *Service, stager Stager, mailer email.Sender) *Reconciler {
	return &Reconciler{Gateway: gateway, Orders: svc, Stager: stager, Mailer: mailer}
}

// Reconcile runs the confirmation state machine for one page load.
//
// With a session id: the gateway is asked whether the session exists; a
// valid session confirms the staged pending order exactly once (the
// staging key is consumed), persists it as COMPLETED, clears the cart,
// and keeps a confirmed copy so revisits redisplay the same order. An
// invalid session discards the pending order and rejects.
//
// Without a session id: a previously confirmed order, if staged, is
// redisplayed; otherwise there is nothing to confirm and the caller
// redirects home.
func (r *Reconciler) Reconcile(ctx context.Context, cartID, sessionID string, cartStore *cart.Store) (ReconcileResult, error) {
	if sessionID == "" {
		confirmed, err := r.Stager.Confirmed(ctx, cartID)
		if err != nil {
			return ReconcileResult{State: StateRejected}, err
		}
		if confirmed == nil {
			return ReconcileResult{State: StateRejected}, nil
		}
		return ReconcileResult{State: StateConfirmed, Order: confirmed}, nil
	}

	valid, err := r.Gateway.ValidateSession(ctx, sessionID)
	if err != nil {
		return ReconcileResult{State: StateRejected}, err
	}
	if !valid {
		if derr := r.Stager.DiscardPending(ctx, cartID); derr != nil {
			log.Printf("Failed to discard pending order for cart %s: %v", cartID, derr)
		}
		return ReconcileResult{State: StateRejected}, nil
	}

	pending, err := r.Stager.TakePending(ctx, cartID)
	if err != nil {
		return ReconcileResult{State: StateRejected}, err
	}
	if pending == nil {
		// Already confirmed on an earlier load with this session id;
		// redisplay instead of creating a duplicate order.
		confirmed, err := r.Stager.Confirmed(ctx, cartID)
		if err != nil || confirmed == nil {
			return ReconcileResult{State: StateRejected}, err
		}
		return ReconcileResult{State: StateConfirmed, Order: confirmed}, nil
	}

	confirmed, err := r.Orders.Confirm(ctx, *pending)
	if err != nil {
		// Persistence failed: put the pending order back so the customer
		// can retry, and reject this load.
		if serr := r.Stager.StagePending(ctx, cartID, *pending); serr != nil {
			log.Printf("Failed to restage pending order %s: %v", pending.OrderNumber, serr)
		}
		return ReconcileResult{State: StateRejected}, err
	}

	if err := r.Stager.StageConfirmed(ctx, cartID, confirmed); err != nil {
		log.Printf("Failed to stage confirmed order %s: %v", confirmed.OrderNumber, err)
	}
	if err := cartStore.Clear(ctx); err != nil {
		log.Printf("Failed to clear cart %s: %v", cartID, err)
	}
	if err := r.Mailer.SendOrderConfirmation(ctx, confirmed); err != nil {
		// Email failure never blocks confirmation.
		log.Printf("Failed to send confirmation email for order %s: %v", confirmed.OrderNumber, err)
	}

	return ReconcileResult{State: StateConfirmed, Order: &confirmed}, nil
}
