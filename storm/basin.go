package storm

// Basin identifies the ocean basin a fix falls in, classified from
// position. It is distinct from the two-letter ATCF basin code in a
// storm's identifier: a long-lived cyclone keeps its identifier but
// crosses Basin boundaries, which is what splits its energy budget.
type Basin int

const (
	BasinWPac Basin = iota
	BasinEPac
	BasinNIO
	BasinSHem
	BasinAtl
)

func (b Basin) String() string {
	switch b {
	case BasinWPac:
		return "WPAC"
	case BasinEPac:
		return "EPAC"
	case BasinNIO:
		return "NIO"
	case BasinSHem:
		return "SHEM"
	case BasinAtl:
		return "ATL"
	}
	return "UNKNOWN"
}

// ClassifyBasin places a fix in a basin from its signed coordinates,
// west longitude negative. The whole southern hemisphere is one
// basin. Longitudes are not normalized; callers feed deck coordinates
// straight in.
//
// The 240-300 band in the northern hemisphere straddles the east
// Pacific and the Atlantic; it is treated as east Pacific for now.
func ClassifyBasin(lon, lat float64) Basin {
	if lat < 0 {
		return BasinSHem
	}
	if lon < 100 {
		if lat < 40 {
			return BasinNIO
		}
		if lon < 70 {
			return BasinAtl
		}
		return BasinWPac
	}
	if lon < 180 {
		return BasinWPac
	}
	if lon < 240 {
		return BasinEPac
	}
	if lon > 300 {
		return BasinAtl
	}
	return BasinEPac
}

// BasinACE splits accumulated cyclone energy across the five basins.
type BasinACE struct {
	WPac float64
	EPac float64
	NIO  float64
	SHem float64
	Atl  float64
}

// Total sums the energy across all basins.
func (a BasinACE) Total() float64 {
	return a.WPac + a.EPac + a.NIO + a.SHem + a.Atl
}

// Get returns the accumulated energy for one basin.
func (a BasinACE) Get(b Basin) float64 {
	switch b {
	case BasinWPac:
		return a.WPac
	case BasinEPac:
		return a.EPac
	case BasinNIO:
		return a.NIO
	case BasinSHem:
		return a.SHem
	case BasinAtl:
		return a.Atl
	}
	return 0
}

func (a *BasinACE) add(b Basin, v float64) {
	switch b {
	case BasinWPac:
		a.WPac += v
	case BasinEPac:
		a.EPac += v
	case BasinNIO:
		a.NIO += v
	case BasinSHem:
		a.SHem += v
	case BasinAtl:
		a.Atl += v
	}
}
