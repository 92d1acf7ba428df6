package compose

// overrides are fixed per-character decompositions, consulted before the
// standard Unicode data. They cover characters whose canonical decomposition
// is absent, wrong for a pixel-font repertoire, or routes through an
// undesired intermediate form — most prominently soft-dotted letters, which
// are forced through the dotless base (U+0131, U+0237), and letters whose
// canonical mark differs from the shape pixel fonts actually draw (comma
// below instead of cedilla, apostrophe instead of caron). An entry with an
// empty sequence forces "no decomposition".
var overrides = map[rune][]rune{
	0x69: {0x0131, 0x0307},
	0x6a: {0x0237, 0x0307},
	0xec: {0x0131, 0x0300},
	0xed: {0x0131, 0x0301},
	0xee: {0x0131, 0x0302},
	0xef: {0x0131, 0x0308},

	0x10f: {0x0064, 0x02bc},
	0x122: {0x0047, 0x0326},
	0x123: {0x0067, 0x02bb},
	0x129: {0x0131, 0x0303},
	0x12b: {0x0131, 0x0304},
	0x12d: {0x0131, 0x0306},
	0x135: {0x0237, 0x0302},
	0x136: {0x004b, 0x0326},
	0x137: {0x006b, 0x0326},
	0x13b: {0x004c, 0x0326},
	0x13c: {0x006c, 0x0326},
	0x13d: {0x004c, 0x02bc},
	0x13e: {0x006c, 0x02bc},
	0x145: {0x004e, 0x0326},
	0x146: {0x006e, 0x0326},
	0x156: {0x0052, 0x0326},
	0x157: {0x0072, 0x0326},
	0x165: {0x0074, 0x02bc},
	0x17f: {},
	0x1d0: {0x0131, 0x030c},
	0x1f0: {0x0237, 0x030c},
	0x209: {0x0131, 0x030f},
	0x20b: {0x0131, 0x0311},

	0x385: {0x0308, 0x0301},
	0x457: {0x0131, 0x0308},

	0x1e06: {0x0042, 0x0331},
	0x1e07: {0x0062, 0x0331},
	0x1e0e: {0x0044, 0x0331},
	0x1e0f: {0x0064, 0x0331},
	0x1e34: {0x004b, 0x0331},
	0x1e35: {0x006b, 0x0331},
	0x1e3a: {0x004c, 0x0331},
	0x1e3b: {0x006c, 0x0331},
	0x1e48: {0x004e, 0x0331},
	0x1e49: {0x006e, 0x0331},
	0x1e5e: {0x0052, 0x0331},
	0x1e5f: {0x0072, 0x0331},
	0x1e6e: {0x0054, 0x0331},
	0x1e6f: {0x0074, 0x0331},
	0x1e94: {0x005a, 0x0331},
	0x1e95: {0x007a, 0x0331},
	0x1ec9: {0x0131, 0x0309},

	// Greek letters with breathing marks decompose through the spacing
	// psili/dasia/combined forms rather than combining mark chains.
	0x1f00: {0x03b1, 0x1fbf},
	0x1f01: {0x03b1, 0x1ffe},
	0x1f02: {0x03b1, 0x1fcd},
	0x1f03: {0x03b1, 0x1fdd},
	0x1f04: {0x03b1, 0x1fce},
	0x1f05: {0x03b1, 0x1fde},
	0x1f08: {0x0391, 0x1fbf},
	0x1f09: {0x0391, 0x1ffe},
	0x1f0a: {0x0391, 0x1fcd},
	0x1f0b: {0x0391, 0x1fdd},
	0x1f0c: {0x0391, 0x1fce},
	0x1f0d: {0x0391, 0x1fde},
	0x1f10: {0x03b5, 0x1fbf},
	0x1f11: {0x03b5, 0x1ffe},
	0x1f12: {0x03b5, 0x1fcd},
	0x1f13: {0x03b5, 0x1fdd},
	0x1f14: {0x03b5, 0x1fce},
	0x1f15: {0x03b5, 0x1fde},
	0x1f18: {0x0395, 0x1fbf},
	0x1f19: {0x0395, 0x1ffe},
	0x1f1a: {0x0395, 0x1fcd},
	0x1f1b: {0x0395, 0x1fdd},
	0x1f1c: {0x0395, 0x1fce},
	0x1f1d: {0x0395, 0x1fde},
	0x1f20: {0x03b7, 0x1fbf},
	0x1f21: {0x03b7, 0x1ffe},
	0x1f22: {0x03b7, 0x1fcd},
	0x1f23: {0x03b7, 0x1fdd},
	0x1f24: {0x03b7, 0x1fce},
	0x1f25: {0x03b7, 0x1fde},
	0x1f28: {0x0397, 0x1fbf},
	0x1f29: {0x0397, 0x1ffe},
	0x1f2a: {0x0397, 0x1fcd},
	0x1f2b: {0x0397, 0x1fdd},
	0x1f2c: {0x0397, 0x1fce},
	0x1f2d: {0x0397, 0x1fde},
	0x1f30: {0x03b9, 0x1fbf},
	0x1f31: {0x03b9, 0x1ffe},
	0x1f32: {0x03b9, 0x1fcd},
	0x1f33: {0x03b9, 0x1fdd},
	0x1f34: {0x03b9, 0x1fce},
	0x1f35: {0x03b9, 0x1fde},
	0x1f38: {0x0399, 0x1fbf},
	0x1f39: {0x0399, 0x1ffe},
	0x1f3a: {0x0399, 0x1fcd},
	0x1f3b: {0x0399, 0x1fdd},
	0x1f3c: {0x0399, 0x1fce},
	0x1f3d: {0x0399, 0x1fde},
	0x1f40: {0x03bf, 0x1fbf},
	0x1f41: {0x03bf, 0x1ffe},
	0x1f42: {0x03bf, 0x1fcd},
	0x1f43: {0x03bf, 0x1fdd},
	0x1f44: {0x03bf, 0x1fce},
	0x1f45: {0x03bf, 0x1fde},
	0x1f48: {0x039f, 0x1fbf},
	0x1f49: {0x039f, 0x1ffe},
	0x1f4a: {0x039f, 0x1fcd},
	0x1f4b: {0x039f, 0x1fdd},
	0x1f4c: {0x039f, 0x1fce},
	0x1f4d: {0x039f, 0x1fde},
	0x1f50: {0x03c5, 0x1fbf},
	0x1f51: {0x03c5, 0x1ffe},
	0x1f52: {0x03c5, 0x1fcd},
	0x1f53: {0x03c5, 0x1fdd},
	0x1f54: {0x03c5, 0x1fce},
	0x1f55: {0x03c5, 0x1fde},
	0x1f59: {0x03a5, 0x1ffe},
	0x1f5b: {0x03a5, 0x1fdd},
	0x1f5d: {0x03a5, 0x1fde},
	0x1f60: {0x03c9, 0x1fbf},
	0x1f61: {0x03c9, 0x1ffe},
	0x1f62: {0x03c9, 0x1fcd},
	0x1f63: {0x03c9, 0x1fdd},
	0x1f64: {0x03c9, 0x1fce},
	0x1f65: {0x03c9, 0x1fde},
	0x1f68: {0x03a9, 0x1fbf},
	0x1f69: {0x03a9, 0x1ffe},
	0x1f6a: {0x03a9, 0x1fcd},
	0x1f6b: {0x03a9, 0x1fdd},
	0x1f6c: {0x03a9, 0x1fce},
	0x1f6d: {0x03a9, 0x1fde},
	0x1fbd: {},
	0x1fbe: {0x037a},
	0x1fbf: {},
	0x1fc1: {0x0308, 0x0342},
	0x1fe4: {0x03c1, 0x1fbf},
	0x1fe5: {0x03c1, 0x1ffe},
	0x1fed: {0x0308, 0x0300},
	0x1fee: {0x0308, 0x0301},
	0x1ff9: {0x039f, 0x0301},

	0x2116: {0x004e, 0x00ba},
}

// anchorExclusions lists composed characters for which automatic anchor
// inference is known to be wrong; their tilings keep component placements
// but get no anchors. Mostly Greek letters where the mark rides beside the
// base instead of above it.
var anchorExclusions = buildExclusionSet([]rune{
	0x3b6, 0x3b8, 0x3b9, 0x3ba, 0x3bc, 0x3be, 0x3bf,
	0x1f02, 0x1f03, 0x1f04, 0x1f05, 0x1f08, 0x1f09, 0x1f0a, 0x1f0b, 0x1f0c, 0x1f0d,
	0x1f12, 0x1f13, 0x1f14, 0x1f15, 0x1f18, 0x1f19, 0x1f1a, 0x1f1b, 0x1f1c, 0x1f1d,
	0x1f22, 0x1f23, 0x1f24, 0x1f25, 0x1f28, 0x1f29, 0x1f2a, 0x1f2b, 0x1f2c, 0x1f2d,
	0x1f32, 0x1f33, 0x1f34, 0x1f35, 0x1f38, 0x1f39, 0x1f3a, 0x1f3b, 0x1f3c, 0x1f3d,
	0x1f42, 0x1f43, 0x1f44, 0x1f45, 0x1f48, 0x1f49, 0x1f4a, 0x1f4b, 0x1f4c, 0x1f4d,
	0x1f52, 0x1f53, 0x1f54, 0x1f55, 0x1f59, 0x1f5b, 0x1f5c,
	0x1f62, 0x1f63, 0x1f64, 0x1f65, 0x1f68, 0x1f69, 0x1f6a, 0x1f6b, 0x1f6c, 0x1f6d,
	0x1f82, 0x1f83, 0x1f84, 0x1f85, 0x1f88, 0x1f89, 0x1f8a, 0x1f8b, 0x1f8c, 0x1f8d,
	0x1f92, 0x1f93, 0x1f94, 0x1f95, 0x1f98, 0x1f99, 0x1f9a, 0x1f9b, 0x1f9c, 0x1f9d,
	0x1fa2, 0x1fa3, 0x1fa4, 0x1fa5, 0x1fa8, 0x1fa9, 0x1faa, 0x1fab, 0x1fac, 0x1fad,
	0x1fba, 0x1fbb,
	0x1fc1, 0x1fc8, 0x1fc9, 0x1fca, 0x1fcb, 0x1fcd, 0x1fce, 0x1fcf,
	0x1fda, 0x1fdb, 0x1fdd, 0x1fde, 0x1fdf,
	0x1fea, 0x1feb, 0x1fec, 0x1fed, 0x1fee,
	0x1ff8, 0x1ff9, 0x1ffa, 0x1ffb,
})

func buildExclusionSet(codes []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

// AnchorExcluded reports whether a composed character is on the manual
// anchor-exclusion list.
func AnchorExcluded(code rune) bool {
	_, excluded := anchorExclusions[code]
	return excluded
}
