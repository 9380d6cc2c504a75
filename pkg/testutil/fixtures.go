// Package testutil provides shared fixtures and assertion helpers for tests.
package testutil

import (
	"time"

	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing.
var (
	TestFarmerID1 = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestFarmerID2 = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	TestFarmID    = uuid.MustParse("00000000-0000-0000-0000-000000000010")
	TestVendorID  = uuid.MustParse("00000000-0000-0000-0000-000000000020")
)

// TestClock is a fixed reference instant used where tests need a stable "now".
var TestClock = time.Date(2025, time.June, 1, 6, 0, 0, 0, time.UTC)
