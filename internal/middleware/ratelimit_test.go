package middleware

import "testing"

func TestIPRateLimiter_BurstThenDeny(t *testing.T) {
	rl := newIPRateLimiter(1, 2)

	if !rl.allow("10.0.0.1") || !rl.allow("10.0.0.1") {
		t.Fatal("burst of 2 must be allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Error("third immediate request must be denied")
	}
}

func TestIPRateLimiter_ClientsIndependent(t *testing.T) {
	rl := newIPRateLimiter(1, 1)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first client must be allowed")
	}
	if !rl.allow("10.0.0.2") {
		t.Error("second client must have its own bucket")
	}
	if rl.allow("10.0.0.1") {
		t.Error("first client must be exhausted")
	}
}
