package analytics

import "testing"

func TestCustomersByState(t *testing.T) {
	df := multiItemOrders(t)

	states := CustomersByState(df)

	if len(states) != 2 {
		t.Fatalf("expected 2 states, got %d", len(states))
	}
	// C1 and C3 in SP, C2 in RJ; duplicate line items per customer must
	// not inflate the counts.
	if states[0].State != "SP" || states[0].CustomerCount != 2 {
		t.Errorf("expected SP with 2 customers first, got %+v", states[0])
	}
	if states[1].State != "RJ" || states[1].CustomerCount != 1 {
		t.Errorf("expected RJ with 1 customer, got %+v", states[1])
	}
}

func TestCustomersByStateOnlyObservedStates(t *testing.T) {
	df := frameFromRows(t,
		"O1,C1,toys,2021-01-05 09:00:00,2021-01-05 10:00:00,delivered,credit_card,10.0,AM,5,1",
	)

	states := CustomersByState(df)

	if len(states) != 1 || states[0].State != "AM" {
		t.Errorf("expected only AM to appear, got %+v", states)
	}
}

func TestCustomersByStateEmptyFrame(t *testing.T) {
	states := CustomersByState(emptyFrame(t))
	if len(states) != 0 {
		t.Errorf("expected no states, got %+v", states)
	}
}
