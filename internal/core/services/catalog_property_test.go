package services

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

// propertyStates is a small pool so generated selections hit records often.
var propertyStates = []domain.State{
	domain.StateMaharashtra, domain.StateKarnataka, domain.StateDelhi, domain.StateKerala,
}

// recordsFromCodes builds a catalogue where each code picks a state and category.
func recordsFromCodes(codes []int) []domain.ServiceRecord {
	cats := domain.AllCategories()
	out := make([]domain.ServiceRecord, len(codes))
	for i, c := range codes {
		out[i] = domain.ServiceRecord{
			ID:       fmt.Sprintf("rec-%04d", i),
			Name:     fmt.Sprintf("Service %d", i),
			State:    propertyStates[c%len(propertyStates)],
			Category: cats[(c/len(propertyStates))%len(cats)],
			URL:      fmt.Sprintf("https://example.gov.in/%d", i),
		}
	}
	return out
}

// selectionFrom maps indices to a selection; index 0 means "no filter".
func selectionFrom(stateIdx, catIdx int) domain.Selection {
	var sel domain.Selection
	if stateIdx > 0 {
		sel.State = propertyStates[stateIdx-1]
	}
	if catIdx > 0 {
		sel.Category = domain.AllCategories()[catIdx-1]
	}
	return sel
}

func isSubsequence(sub, full []domain.ServiceRecord) bool {
	j := 0
	for i := range full {
		if j < len(sub) && full[i].ID == sub[j].ID {
			j++
		}
	}
	return j == len(sub)
}

func TestFilter_GeneratedProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	codes := gen.SliceOf(gen.IntRange(0, 999))
	stateIdx := gen.IntRange(0, len(propertyStates))
	catIdx := gen.IntRange(0, len(domain.AllCategories()))

	properties.Property("every result satisfies the selection", prop.ForAll(
		func(c []int, si, ci int) bool {
			sel := selectionFrom(si, ci)
			for _, r := range Filter(recordsFromCodes(c), sel) {
				if !sel.IsEmpty() && !sel.Matches(&r) {
					return false
				}
			}
			return true
		},
		codes, stateIdx, catIdx,
	))

	properties.Property("results are an ordered subsequence of the input", prop.ForAll(
		func(c []int, si, ci int) bool {
			records := recordsFromCodes(c)
			return isSubsequence(Filter(records, selectionFrom(si, ci)), records)
		},
		codes, stateIdx, catIdx,
	))

	properties.Property("no record that matches is dropped", prop.ForAll(
		func(c []int, si, ci int) bool {
			records := recordsFromCodes(c)
			sel := selectionFrom(si, ci)
			want := 0
			for i := range records {
				if sel.Matches(&records[i]) {
					want++
				}
			}
			return len(Filter(records, sel)) == want
		},
		codes, stateIdx, catIdx,
	))

	properties.Property("filtering is idempotent", prop.ForAll(
		func(c []int, si, ci int) bool {
			sel := selectionFrom(si, ci)
			once := Filter(recordsFromCodes(c), sel)
			twice := Filter(once, sel)
			if len(once) != len(twice) {
				return false
			}
			for i := range once {
				if once[i] != twice[i] {
					return false
				}
			}
			return true
		},
		codes, stateIdx, catIdx,
	))

	properties.Property("no selection is identity", prop.ForAll(
		func(c []int) bool {
			records := recordsFromCodes(c)
			out := Filter(records, domain.Selection{})
			if len(out) != len(records) {
				return false
			}
			for i := range out {
				if out[i] != records[i] {
					return false
				}
			}
			return true
		},
		codes,
	))

	properties.TestingRun(t)
}
