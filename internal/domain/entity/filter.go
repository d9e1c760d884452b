package entity

// FilterCriteria holds the user-selected dashboard filters. A nil id or an
// empty date string means that constraint is inactive. Criteria are read
// fresh on every request and never persisted.
type FilterCriteria struct {
	ClientID     *int64
	RestaurantID *int64
	DateFrom     string
	DateTo       string
}

// Matches reports whether the row satisfies every active constraint.
// Date bounds compare lexicographically, which is date-order-correct for
// ISO dates; rows with an empty date always pass the date predicates.
func (f FilterCriteria) Matches(row DailyRow) bool {
	if f.ClientID != nil && row.ClientID != *f.ClientID {
		return false
	}
	if f.RestaurantID != nil && row.RestaurantID != *f.RestaurantID {
		return false
	}
	if f.DateFrom != "" && row.Date != "" && row.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && row.Date != "" && row.Date > f.DateTo {
		return false
	}
	return true
}

// Sanitized returns a copy of the criteria with inconsistent selections
// auto-corrected: a restaurant that does not belong to the selected client is
// cleared, and reversed date bounds are swapped. Invalid combinations are
// never rejected.
func (f FilterCriteria) Sanitized(restaurants []Restaurant) FilterCriteria {
	out := f
	if out.ClientID != nil && out.RestaurantID != nil {
		for _, r := range restaurants {
			if r.ID == *out.RestaurantID {
				if r.ClientID != *out.ClientID {
					out.RestaurantID = nil
				}
				break
			}
		}
	}
	if out.DateFrom != "" && out.DateTo != "" && out.DateFrom > out.DateTo {
		out.DateFrom, out.DateTo = out.DateTo, out.DateFrom
	}
	return out
}

// FilterRows returns the rows satisfying all active constraints.
func FilterRows(rows []DailyRow, f FilterCriteria) []DailyRow {
	out := make([]DailyRow, 0, len(rows))
	for _, row := range rows {
		if f.Matches(row) {
			out = append(out, row)
		}
	}
	return out
}
