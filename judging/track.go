package judging

// DefaultTrackName is the group used for projects that have neither a linked
// track nor a legacy track name.
const DefaultTrackName = "General"

type trackKind int

const (
	trackUnset trackKind = iota
	trackLinked
	trackLegacy
)

// TrackRef is where a project's track comes from: a linked Track row, the
// legacy free-text column, or nothing at all.
type TrackRef struct {
	kind trackKind
	name string
}

func LinkedTrack(name string) TrackRef {
	return TrackRef{kind: trackLinked, name: name}
}

func LegacyTrack(name string) TrackRef {
	if name == "" {
		return UnsetTrack()
	}
	return TrackRef{kind: trackLegacy, name: name}
}

func UnsetTrack() TrackRef {
	return TrackRef{kind: trackUnset}
}

func (r TrackRef) IsLinked() bool {
	return r.kind == trackLinked
}

// ResolveTrack returns the display name used everywhere a track is shown or grouped.
func ResolveTrack(ref TrackRef) string {
	switch ref.kind {
	case trackLinked, trackLegacy:
		if ref.name != "" {
			return ref.name
		}
	}
	return DefaultTrackName
}
