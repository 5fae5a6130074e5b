package scoring

// TrackWeights parameterizes the track placement score. Signs matter:
// negative weights penalize, positive reward. The two penalty fields are
// sentinels and must stay far below anything the additive terms can reach.
type TrackWeights struct {
	Base             float64 `yaml:"base"`
	TerrainCost      float64 `yaml:"terrain_cost"`       // per paint point, negative: prefer cheap tiles
	TownRegion       float64 `yaml:"town_region"`        // flat bonus for tiles in a town region
	OnDesiredPath    float64 `yaml:"on_desired_path"`    // flat bonus for tiles on a town-to-town path
	AdjacentOwnTrack float64 `yaml:"adjacent_own_track"` // flat bonus for growing contiguous track
	Instability      float64 `yaml:"instability"`        // per instability level, negative: risky regions
	ExistingTrack    float64 `yaml:"existing_track"`     // sentinel: tile already carries a track
	Inked            float64 `yaml:"inked"`              // sentinel: region is destroyed
}

// DisruptionWeights parameterizes the region disruption score.
type DisruptionWeights struct {
	Base           float64 `yaml:"base"`
	OpponentTracks float64 `yaml:"opponent_tracks"`  // per opponent track in the region
	OwnTracks      float64 `yaml:"own_tracks"`       // per own track, negative: avoid self-harm
	NearTownRegion float64 `yaml:"near_town_region"` // flat bonus for regions bordering a town region
	Instability    float64 `yaml:"instability"`      // per level, positive: finish off nearly-inked regions
	Illegal        float64 `yaml:"illegal"`          // sentinel: inked or town region
}

// DefaultTrackWeights returns the tuned baseline weights.
func DefaultTrackWeights() TrackWeights {
	return TrackWeights{
		Base:             100,
		TerrainCost:      -5,
		TownRegion:       2,
		OnDesiredPath:    40,
		AdjacentOwnTrack: 25,
		Instability:      -15,
		ExistingTrack:    -1000,
		Inked:            -2000,
	}
}

// DefaultDisruptionWeights returns the tuned baseline weights.
func DefaultDisruptionWeights() DisruptionWeights {
	return DisruptionWeights{
		Base:           50,
		OpponentTracks: 30,
		OwnTracks:      -50,
		NearTownRegion: 20,
		Instability:    15,
		Illegal:        -3000,
	}
}
