// SPDX-License-Identifier: EPL-2.0

// Package output provides an audio.Device backed by ebitengine/oto.
//
// Every play gets its own oto player fed by an audio.Panner, so volume
// and pan are applied in software and mono clips come out centred on both
// channels.
package output
