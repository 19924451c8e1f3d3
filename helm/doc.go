// Package helm drives the helm binary for the chart pipeline.
//
// Client runs the four commands the pipeline needs:
//
//	helm show chart <dir>
//	helm dependency update <dir>
//	helm package --destination <dest> <dir>
//	helm repo index --url <url> <dir>
//
// Failures are platform errors with code TOOL_FAILURE and a "step" context
// entry naming the command that failed.
//
// A dependency update may call back into helm-git when a chart depends on a
// git+ repository. Guard bounds that recursion: it is carried from parent to
// child process through HELM_GIT_DEPENDENCY_DEPTH and
// HELM_GIT_DEPENDENCY_CHAIN.
package helm
