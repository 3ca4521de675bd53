package core

// Color is the role a screen cell plays in a rendered scene.
// The platform layer maps roles to terminal styles.
type Color uint8

const (
	ColorDefault  Color = iota
	ColorBody           // Unselected body outline
	ColorSelected       // Body under keyboard control
	ColorOverlap        // Body currently overlapping another
	ColorSegment        // Free segment
	ColorHit            // Intersection point or overlap sub-segment
	ColorGhost          // Previous-frame position
	ColorText           // Status text
)
