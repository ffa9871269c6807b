/*
Package domain contains the configuration tree shared by every validation stage.

It defines the shape of an AI-generated dashboard configuration (tabs,
components, pipelines and the color palette) along with the reporting types
produced by a validation pass. This package is kept pure and free of external
dependencies like I/O or decoding, following Hexagonal Architecture principles.

# Key Entities

  - Config: The root of the tree (business type, ordered tabs, colors).
  - Tab: A navigation entry. The first tab is the platform-managed Dashboard.
  - Component: A sub-view keyed by an entity kind, with a view discriminator.
  - PipelineStage: A fully resolved, ordered and colored kanban column.
  - Colors: The ten named theme slots plus any extra keys.
  - Report: What each stage changed during a pass (see Diff).
*/
package domain
