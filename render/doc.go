// Package render converts generated planform planes into standard image
// types for callers that display stimuli.
//
// The planform package itself performs no I/O and no visualization; this
// package is the in-memory bridge: Gray maps a [0, grayScale] float plane
// onto an 8-bit *image.Gray, and Thumbnail produces an interpolated
// preview-sized copy of any image.
//
// ⚙️ Usage:
//
//	cfg, _ := planform.Resolve(planform.Hexagonal())
//	imgs, _ := planform.Generate(cfg)
//	g, err := render.Gray(imgs[planform.NameP123456], cfg.GrayScale)
//	if err != nil { ... }
//	preview := render.Thumbnail(g, 128)
//
// Complexity: O(N²) per conversion.
package render
