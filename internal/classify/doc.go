// Package classify detects specialized media variants (stereoscopic 3D,
// 360/180 immersive, HDR) from the unstructured text that rides along with
// a format descriptor and its owning video metadata.
//
// Detection is heuristic keyword matching over lower-cased text. The
// keyword lists are ordered and iterated in fixed sequence so ties break
// deterministically; the stereoscopic scan stops at the first hit. The
// priority constants and substring matches are preserved from long-standing
// behaviour even where they can false-positive (a "180" in an unrelated
// title will tag VR180).
package classify
