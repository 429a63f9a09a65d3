// Package replyrouter assigns opaque ids to outbound collaborator calls made by
// the liquidation coordinator and resumes the waterfall when their replies
// arrive, reproducing the CosmWasm submessage/reply suspension model (see
// SPEC_FULL.md §0) as an explicit, KVStore-persisted continuation.
package replyrouter

import (
	"github.com/google/uuid"
)

// Leg identifies which waterfall leg an outbound call belongs to.
type Leg string

const (
	LegBidQueue      Leg = "bid_queue"
	LegStabilityPool Leg = "stability_pool"
	LegSellWall      Leg = "sell_wall"
	LegClosePosition Leg = "close_position"
	LegWithdraw      Leg = "withdraw"
)

// NewReplyID mints an opaque reply id for an outbound call. IDs double as
// correlation ids in structured log fields (SPEC_FULL.md §2).
func NewReplyID() string {
	return uuid.NewString()
}

// Router enforces submission-order delivery of replies bound to the same
// parent propagation (§5 "Ordering guarantees"). Each parent propagation
// maintains its own FIFO of pending reply ids; a reply is only deliverable
// once it is at the head of its parent's queue.
type Router struct {
	pending map[string][]string // parent key -> ordered pending reply ids
}

func NewRouter() *Router {
	return &Router{pending: make(map[string][]string)}
}

// Enqueue registers replyID as the next expected reply for parentKey (e.g. a
// position's (owner,id) composite) and returns it for convenience.
func (r *Router) Enqueue(parentKey, replyID string) string {
	r.pending[parentKey] = append(r.pending[parentKey], replyID)
	return replyID
}

// IsNext reports whether replyID is at the head of parentKey's queue, i.e. it
// may be delivered now.
func (r *Router) IsNext(parentKey, replyID string) bool {
	q := r.pending[parentKey]
	return len(q) > 0 && q[0] == replyID
}

// Ack pops replyID from the head of parentKey's queue once its reply handler
// has run to completion.
func (r *Router) Ack(parentKey, replyID string) {
	q := r.pending[parentKey]
	if len(q) > 0 && q[0] == replyID {
		r.pending[parentKey] = q[1:]
	}
	if len(r.pending[parentKey]) == 0 {
		delete(r.pending, parentKey)
	}
}
