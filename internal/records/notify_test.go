package records

import "testing"

func TestNotifierOneBannerAtATime(t *testing.T) {
	n := NewNotifier()

	if n.Current().Kind != NoticeNone {
		t.Fatal("new notifier shows a banner")
	}

	n.Success("Record updated successfully!")
	if got := n.Current(); got.Kind != NoticeSuccess || got.Message != "Record updated successfully!" {
		t.Errorf("banner = %+v", got)
	}

	// A failure replaces the success outright.
	n.Failure("Already locked by another operator")
	if got := n.Current(); got.Kind != NoticeFailure {
		t.Errorf("banner = %+v", got)
	}
}

func TestExpireOnlyClearsMatchingBanner(t *testing.T) {
	n := NewNotifier()

	first := n.Success("one")
	second := n.Success("two")

	// The first banner's timer fires after it was replaced.
	n.Expire(first)
	if n.Current().Message != "two" {
		t.Errorf("stale expiry cleared the live banner: %+v", n.Current())
	}

	n.Expire(second)
	if n.Current().Kind != NoticeNone {
		t.Error("matching expiry did not clear banner")
	}
}

func TestDismissCancelsPendingExpiry(t *testing.T) {
	n := NewNotifier()
	seq := n.Success("done")

	// User closes the banner early, then raises a failure before the
	// old timer fires.
	n.Dismiss()
	n.Failure("broke")
	n.Expire(seq)

	if got := n.Current(); got.Kind != NoticeFailure || got.Message != "broke" {
		t.Errorf("banner = %+v", got)
	}
}

func TestFailureHasNoAutoExpiry(t *testing.T) {
	// Failures carry a seq too, but the console only schedules expiry
	// for successes; Expire with a wrong seq must leave it up.
	n := NewNotifier()
	n.Failure("broke")
	n.Expire(0)
	if n.Current().Kind != NoticeFailure {
		t.Error("failure banner cleared without dismissal")
	}

	n.Dismiss()
	if n.Current().Kind != NoticeNone {
		t.Error("dismiss did not clear banner")
	}
}
