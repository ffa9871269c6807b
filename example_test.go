package pergola_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/pkg/domain"
)

// ExampleValidator_Validate shows stage colors being inferred from names.
// Compound patterns such as "stripe" win over plain color words, and a color
// word in the name overrides whatever color the generator supplied.
func ExampleValidator_Validate() {
	cfg := &domain.Config{
		BusinessType: "martial_arts",
		Tabs: []*domain.Tab{
			{ID: "tab_1", Label: "Dashboard"},
			{ID: "tab_2", Label: "Students", Components: []*domain.Component{
				{ID: "belts", Label: "Belts", Stages: []domain.RawStage{
					{Name: "White Belt"},
					{Name: "White Stripe Belt"},
					{Name: "Gold Tier", Color: "#000000"},
					{Name: "Graduated"},
				}},
			}},
		},
	}

	res, err := pergola.New().Validate(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	belts := res.Config.Tabs[1].Components[0]
	fmt.Println(belts.View)
	for _, stage := range belts.Pipeline.Stages {
		line := fmt.Sprintf("%d %s %s", stage.Order, stage.Name, stage.Color)
		if stage.ColorSecondary != "" {
			line += "/" + stage.ColorSecondary
		}
		fmt.Println(line)
	}
	// Output:
	// pipeline
	// 0 White Belt #E5E7EB
	// 1 White Stripe Belt #E5E7EB/#1A1A1A
	// 2 Gold Tier #FFD700
	// 3 Graduated #10B981
}

// ExampleDecode shows lenient decoding: the malformed view is dropped with
// a warning and the component falls back to its registry default.
func ExampleDecode() {
	cfg, warnings, err := pergola.Decode([]byte(`
business_type: barbershop
tabs:
  - id: tab_2
    label: Clients
    components:
      - {id: clients, label: Clients, view: 7}
`))
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range warnings {
		fmt.Println(w)
	}

	validated := pergola.Validate(cfg)
	fmt.Println(validated.Tabs[0].Components[0].View)
	// Output:
	// field "tabs[0].components[0].view": expected string, got int (got int)
	// pipeline
}
