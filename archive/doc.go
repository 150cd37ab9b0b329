// SPDX-License-Identifier: EPL-2.0

// Package archive finds game audio assets by name.
//
// Asset names come from static tables written for a case-insensitive
// file system ("XPLOBIG.AUD"). Dir serves them from any fs.FS, such as
// os.DirFS or an embed.FS, matching names regardless of case. When a name
// is missing, Dir tries the same stem with other extensions so a mod can
// drop "xplobig.ogg" in place of the original container.
//
//	res := archive.NewDir(os.DirFS("assets"))
//	b, err := res.FindBytes("XPLOBIG.AUD")
//
// Dir implements the resolver interfaces used by the scheduler, including
// Locate, which lets the scheduler pick a decoder from the replacement's
// real extension.
package archive
