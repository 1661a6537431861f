// services/selection.go
package services

import "sreepix-backend/models"

// SetQuantity returns the selection after setting serviceID's quantity.
//
// Quantity <= 0 removes the entry (no error if absent). An id not present in
// the catalog leaves the selection unchanged: the UI only offers catalog ids,
// so an unknown id is a stale click, not a failure. Amounts are always
// recomputed as quantity * rate, never carried over.
func SetQuantity(catalog []models.ServiceItem, selection []models.SelectedService, serviceID string, quantity int) []models.SelectedService {
	if quantity <= 0 {
		out := make([]models.SelectedService, 0, len(selection))
		for _, s := range selection {
			if s.ID != serviceID {
				out = append(out, s)
			}
		}
		return out
	}

	var item *models.ServiceItem
	for i := range catalog {
		if catalog[i].ID == serviceID {
			item = &catalog[i]
			break
		}
	}
	if item == nil {
		return selection
	}

	amount := quantity * item.Rate

	out := make([]models.SelectedService, len(selection))
	copy(out, selection)
	for i := range out {
		if out[i].ID == serviceID {
			out[i].Quantity = quantity
			out[i].Amount = amount
			return out
		}
	}
	return append(out, models.SelectedService{
		ServiceItem: *item,
		Quantity:    quantity,
		Amount:      amount,
	})
}

// Total sums the computed amounts across the selection.
func Total(selection []models.SelectedService) int {
	total := 0
	for _, s := range selection {
		total += s.Amount
	}
	return total
}

// GroupByCategory partitions catalog items into the closed category set,
// preserving catalog order within each group. Items are guaranteed to land
// in exactly one group because stores reject unknown categories at load.
func GroupByCategory(items []models.ServiceItem) map[models.Category][]models.ServiceItem {
	groups := make(map[models.Category][]models.ServiceItem, 3)
	for _, c := range models.Categories() {
		groups[c] = []models.ServiceItem{}
	}
	for _, item := range items {
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}
