// Package chart turns a checked-out directory into a Helm chart repository.
//
// Discover finds chart definitions (Chart.yaml) in the directory itself and in
// its immediate subdirectories. Pipeline.Run then processes every chart in
// order:
//
//   - inspect: read the chart metadata to learn its name
//   - dependency: run 'helm dependency update' when enabled and the
//     dependency guard allows it
//   - package: copy the chart to a scratch directory and package it into the
//     target directory
//
// and finally builds index.yaml in the target directory with the request's
// canonical URI as base URL, so that Helm resolves chart archives through
// helm-git again.
//
// Helm is reached through the Tool interface; helm.Client is the production
// implementation.
package chart
