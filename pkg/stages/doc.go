/*
Package stages implements the structural rewrites applied to an AI-generated
dashboard configuration.

Each stage mutates the tree it is given in place and never fails: malformed
or missing fields degrade to documented defaults. Stages hold no state and do
not call each other; ordering is owned by the orchestrator (see
internal/runtime). Running any stage twice yields the same tree as running it
once.

# Stages

  - ConsolidateCalendars: one calendar view per platform, Dashboard emptied.
  - EnforceTabLimit: at most domain.MaxTabs tabs.
  - EnsureGallery: a gallery component for image-centric businesses.
  - TransformPipelineStages: canonical, ordered, colored pipeline stages.
  - ValidateColors: industry palette when the generated one is generic.
  - RestoreLockedComponents: re-inserts mandatory components from a template.
  - StripInternalFlags: removes _locked and _removable markers.
*/
package stages
