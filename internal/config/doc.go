// Package config provides the partial settings representation, the
// compiled-in defaults and the sources partial settings are collected from.
//
// Partial settings are assembled from any number of sources; later sources
// override the fields earlier ones set:
//  1. Environment variables ([EnvSource])
//  2. JSON payloads supplied by the caller ([JSONSource])
//  3. In-memory values ([StaticSource], [MapSource])
//
// The main entry points are [Collect], which layers sources into one
// [PartialSettings], and [Merge], which deep-merges partial layers field by
// field. Validation of the merged result lives in the validators package.
package config
