package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/testutil"
)

func TestCalculateEMI(t *testing.T) {
	t.Run("standard amortization", func(t *testing.T) {
		emi := CalculateEMI(decimal.NewFromInt(50000), 8, 6)
		assert.True(t, emi.Equal(decimal.NewFromInt(8529)), "got %s", emi)
	})

	t.Run("zero rate splits principal evenly", func(t *testing.T) {
		emi := CalculateEMI(decimal.NewFromInt(100000), 0, 12)
		assert.True(t, emi.Equal(decimal.NewFromInt(8333)), "got %s", emi)
	})

	t.Run("degenerate inputs yield zero", func(t *testing.T) {
		assert.True(t, CalculateEMI(decimal.NewFromInt(50000), 8, 0).IsZero())
		assert.True(t, CalculateEMI(decimal.Zero, 8, 6).IsZero())
		assert.True(t, CalculateEMI(decimal.NewFromInt(-100), 8, 6).IsZero())
	})
}

func TestGenerateRepaymentSchedule(t *testing.T) {
	start := testutil.TestClock

	t.Run("full plan for an interest-bearing loan", func(t *testing.T) {
		schedule := GenerateRepaymentSchedule(decimal.NewFromInt(50000), 8, 6, start)
		require.Len(t, schedule, 6)

		emi := decimal.NewFromInt(8529)
		for i, entry := range schedule {
			assert.Equal(t, i+1, entry.Period)
			assert.True(t, entry.EMI.Equal(emi), "period %d EMI %s", entry.Period, entry.EMI)
			assert.True(t, entry.Principal.Add(entry.Interest).Equal(emi))
		}

		// First installment: interest on the full principal.
		assert.True(t, schedule[0].Interest.Equal(decimal.NewFromInt(333)), "got %s", schedule[0].Interest)
		assert.True(t, schedule[0].RemainingBalance.Equal(decimal.NewFromInt(41804)))

		// Interest declines month over month.
		for i := 1; i < len(schedule); i++ {
			assert.True(t, schedule[i].Interest.LessThan(schedule[i-1].Interest))
		}

		// Per-entry rounding drives the final balance to zero via the floor.
		assert.True(t, schedule[5].RemainingBalance.IsZero(), "got %s", schedule[5].RemainingBalance)
	})

	t.Run("zero-rate plan leaves a rounding residue", func(t *testing.T) {
		schedule := GenerateRepaymentSchedule(decimal.NewFromInt(100000), 0, 12, start)
		require.Len(t, schedule, 12)

		for _, entry := range schedule {
			assert.True(t, entry.Interest.IsZero())
			assert.True(t, entry.EMI.Equal(decimal.NewFromInt(8333)))
		}
		// 12 x 8333 = 99996; the 4 rupee residue stays on the last entry.
		assert.True(t, schedule[11].RemainingBalance.Equal(decimal.NewFromInt(4)))
	})

	t.Run("due dates fall monthly after the start date", func(t *testing.T) {
		schedule := GenerateRepaymentSchedule(decimal.NewFromInt(12000), 0, 3, start)
		require.Len(t, schedule, 3)
		assert.Equal(t, start.AddDate(0, 1, 0), schedule[0].DueDate)
		assert.Equal(t, start.AddDate(0, 2, 0), schedule[1].DueDate)
		assert.Equal(t, start.AddDate(0, 3, 0), schedule[2].DueDate)
	})

	t.Run("degenerate inputs yield nil", func(t *testing.T) {
		assert.Nil(t, GenerateRepaymentSchedule(decimal.Zero, 8, 6, start))
		assert.Nil(t, GenerateRepaymentSchedule(decimal.NewFromInt(50000), 8, 0, time.Time{}))
	})
}
