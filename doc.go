/*
Package pergola is a deterministic validation pipeline for AI-generated
dashboard configurations.

A generator (usually a language model) emits a configuration tree: tabs,
components with views, pipeline stages and a color palette. The output is
mostly right and occasionally wrong in predictable ways: two calendars,
too many tabs, stage colors that do not match their names, the generator's
favorite placeholder red. Pergola repairs those trees before they reach the
renderer, without calling back into the generator.

# Stages

The pipeline runs seven stages in a fixed order, each mutating the tree in
place:

  - consolidate_calendars: one calendar view, an empty Dashboard tab.
  - enforce_tab_limit: at most eight tabs, first ones kept.
  - ensure_gallery: visual industries always get a gallery.
  - transform_pipeline_stages: raw stage names become colored kanban columns.
  - validate_colors: placeholder palettes are replaced by industry palettes.
  - restore_locked_components: template components marked locked come back.
  - strip_internal_flags: _locked and _removable never reach the renderer.

Running the pipeline on its own output changes nothing.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/pergola"
		"github.com/aretw0/pergola/pkg/templates"
	)

	func main() {
		data, err := os.ReadFile("generated.json")
		if err != nil {
			log.Fatal(err)
		}

		tpl, err := templates.Get("tattoo")
		if err != nil {
			log.Fatal(err)
		}

		v := pergola.New()
		res, err := v.ValidateBytes(context.Background(), data, pergola.WithBuiltinTemplate(tpl))
		if err != nil {
			log.Fatal(err)
		}

		out, _ := pergola.Encode(res.Config, pergola.FormatJSON)
		os.Stdout.Write(out)
	}
*/
package pergola
