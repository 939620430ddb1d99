package entities

import "testing"

func TestQuoteStatus_IsReviewerStatus(t *testing.T) {
	reviewer := []QuoteStatus{QuoteStatusReviewed, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusFinalized}
	for _, s := range reviewer {
		if !s.IsReviewerStatus() {
			t.Fatalf("expected %s to be a reviewer status", s)
		}
	}

	for _, s := range []QuoteStatus{QuoteStatusGenerated, "deleted", "", "REVIEWED"} {
		if s.IsReviewerStatus() {
			t.Fatalf("expected %s to be rejected", s)
		}
	}
}

func TestQuoteStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct {
		from QuoteStatus
		to   QuoteStatus
	}{
		{QuoteStatusGenerated, QuoteStatusReviewed},
		{QuoteStatusReviewed, QuoteStatusApproved},
		{QuoteStatusReviewed, QuoteStatusRejected},
		{QuoteStatusApproved, QuoteStatusFinalized},
		{QuoteStatusRejected, QuoteStatusFinalized},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	forbidden := []struct {
		from QuoteStatus
		to   QuoteStatus
	}{
		{QuoteStatusGenerated, QuoteStatusApproved},
		{QuoteStatusGenerated, QuoteStatusFinalized},
		{QuoteStatusReviewed, QuoteStatusReviewed},
		{QuoteStatusApproved, QuoteStatusRejected},
		{QuoteStatusFinalized, QuoteStatusReviewed},
		{QuoteStatusFinalized, QuoteStatusFinalized},
	}
	for _, tc := range forbidden {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}
