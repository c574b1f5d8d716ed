package analytics

import "testing"

func TestDeliveryStatusCounts(t *testing.T) {
	// O1 on time (+2), O2 late (-1), O3 on time (0, boundary).
	df := multiItemOrders(t)

	counts := DeliveryStatusCounts(df)

	if len(counts) != 2 {
		t.Fatalf("expected 2 delivery groups, got %d", len(counts))
	}
	if counts[0].Status != DeliveryOnTime || counts[0].OrderCount != 2 {
		t.Errorf("expected 2 on-time orders first, got %+v", counts[0])
	}
	if counts[1].Status != DeliveryLate || counts[1].OrderCount != 1 {
		t.Errorf("expected 1 late order, got %+v", counts[1])
	}
}

func TestDeliveryStatusExcludesUnresolvedAndUndelivered(t *testing.T) {
	df := frameFromRows(t,
		"O1,C1,toys,2021-01-05 09:00:00,2021-01-05 10:00:00,delivered,credit_card,100.0,SP,4,2",
		"O2,C2,toys,2021-01-06 09:00:00,2021-01-06 10:00:00,delivered,credit_card,100.0,SP,4,",
		"O3,C3,toys,2021-01-07 09:00:00,2021-01-07 10:00:00,shipped,credit_card,100.0,SP,4,3",
	)

	counts := DeliveryStatusCounts(df)

	// O2 is delivered but its offset is unresolved; O3 is not delivered.
	total := 0
	for _, c := range counts {
		total += c.OrderCount
	}
	if total != 1 {
		t.Fatalf("expected exactly 1 classified order, got %d (%+v)", total, counts)
	}
	if counts[0].Status != DeliveryOnTime {
		t.Errorf("expected the remaining order on time, got %+v", counts[0])
	}
}

func TestDeliveryStatusCountsDistinctOrders(t *testing.T) {
	// One delivered order as two line items must count once.
	df := frameFromRows(t,
		"O1,C1,toys,2021-01-05 09:00:00,2021-01-05 10:00:00,delivered,credit_card,100.0,SP,4,-3",
		"O1,C1,books,2021-01-05 09:00:00,2021-01-05 10:00:00,delivered,credit_card,100.0,SP,4,-3",
	)

	counts := DeliveryStatusCounts(df)

	if len(counts) != 1 || counts[0].Status != DeliveryLate || counts[0].OrderCount != 1 {
		t.Errorf("expected a single late order, got %+v", counts)
	}
}

func TestDeliveryStatusEmptyFrame(t *testing.T) {
	counts := DeliveryStatusCounts(emptyFrame(t))
	if len(counts) != 0 {
		t.Errorf("expected no delivery groups, got %+v", counts)
	}
}
