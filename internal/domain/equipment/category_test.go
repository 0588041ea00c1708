//go:build unit

package equipment_test

import (
	"testing"

	"gymbook/internal/domain/equipment"
	"gymbook/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuildCategories(t *testing.T) {
	t.Run("groups by category in first-seen order", func(t *testing.T) {
		items := []equipment.Equipment{
			builder.NewEquipmentBuilder().WithID("treadmill-1").WithCategory("Cardio").Build(),
			builder.NewEquipmentBuilder().WithID("bench-1").WithCategory("Strength").Build(),
			builder.NewEquipmentBuilder().WithID("treadmill-2").WithCategory("Cardio").InUseBy("user-9").Build(),
			builder.NewEquipmentBuilder().WithID("rope-1").WithCategory("Functional").Build(),
		}

		want := []equipment.Category{
			{ID: "1", Name: "Cardio", Available: 1, Total: 2, Color: "#4CAF50"},
			{ID: "2", Name: "Strength", Available: 1, Total: 1, Color: "#2196F3"},
			{ID: "3", Name: "Functional", Available: 1, Total: 1, Color: "#9C27B0"},
		}

		got := equipment.BuildCategories(items)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("BuildCategories mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("same category string lands in one entry regardless of position", func(t *testing.T) {
		items := []equipment.Equipment{
			builder.NewEquipmentBuilder().WithID("a").WithCategory("Cardio").Build(),
			builder.NewEquipmentBuilder().WithID("b").WithCategory("Strength").Build(),
			builder.NewEquipmentBuilder().WithID("c").WithCategory("Cardio").Build(),
			builder.NewEquipmentBuilder().WithID("d").WithCategory("Cardio").Build(),
		}

		got := equipment.BuildCategories(items)
		assert.Len(t, got, 2)
		assert.Equal(t, 3, got[0].Total)
		assert.Equal(t, "Cardio", got[0].Name)
	})

	t.Run("counts only available equipment as available", func(t *testing.T) {
		items := []equipment.Equipment{
			builder.NewEquipmentBuilder().WithID("a").InUseBy("user-1").Build(),
			builder.NewEquipmentBuilder().WithID("b").InUseBy("user-2").Build(),
			builder.NewEquipmentBuilder().WithID("c").Build(),
		}

		got := equipment.BuildCategories(items)
		assert.Len(t, got, 1)
		assert.Equal(t, 1, got[0].Available)
		assert.Equal(t, 3, got[0].Total)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, equipment.BuildCategories(nil))
	})
}

func TestColorFor(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Cardio", "#4CAF50"},
		{"Strength", "#2196F3"},
		{"Free Weights", "#FF9800"},
		{"Functional", "#9C27B0"},
		{"Recovery", equipment.DefaultCategoryColor},
		{"", equipment.DefaultCategoryColor},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, equipment.ColorFor(tc.name))
		})
	}
}

func TestEquipmentConsistency(t *testing.T) {
	t.Run("available equipment has no holder", func(t *testing.T) {
		e := builder.NewEquipmentBuilder().Build()
		assert.True(t, e.Consistent())
		_, held := e.HeldBy()
		assert.False(t, held)
	})

	t.Run("in-use equipment names its holder", func(t *testing.T) {
		e := builder.NewEquipmentBuilder().InUseBy("user-7").Build()
		assert.True(t, e.Consistent())
		holder, held := e.HeldBy()
		assert.True(t, held)
		assert.Equal(t, "user-7", holder)
	})

	t.Run("available equipment with a lingering holder is inconsistent", func(t *testing.T) {
		uid := "user-7"
		e := builder.NewEquipmentBuilder().Build()
		e.CurrentUserID = &uid
		assert.False(t, e.Consistent())
	})
}
