// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package dedupe collapses raw mentions that denote the same underlying
// entity into a single representative per group.
package dedupe

import (
	"sort"

	"adverse-screen/internal/entity"
)

type groupKey struct {
	normalized string
	category   entity.Category
}

// Deduplicate partitions entities by (normalized key, category) and keeps the
// best member of each group: highest confidence, ties broken by the longer
// name so the more complete form survives. This is a best-of reduction, not a
// merge — the representative's confidence is used as-is.
//
// The result is sorted by category and then descending confidence for stable
// downstream display; the representative set itself is independent of input
// order.
func Deduplicate(entities []entity.Entity) []entity.Entity {
	if len(entities) == 0 {
		return nil
	}

	groups := make(map[groupKey]entity.Entity, len(entities))
	for _, e := range entities {
		key := groupKey{normalized: e.NormalizedKey, category: e.Category}
		best, seen := groups[key]
		if !seen || betterRepresentative(e, best) {
			groups[key] = e
		}
	}

	result := make([]entity.Entity, 0, len(groups))
	for _, e := range groups {
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		if result[i].Confidence != result[j].Confidence {
			return result[i].Confidence > result[j].Confidence
		}
		return result[i].Name < result[j].Name
	})

	return result
}

func betterRepresentative(candidate, current entity.Entity) bool {
	if candidate.Confidence != current.Confidence {
		return candidate.Confidence > current.Confidence
	}
	return len(candidate.Name) > len(current.Name)
}
