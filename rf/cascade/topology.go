package cascade

// Topology is a fixed, ordered arrangement of connection roles between the
// device and the reference load. The set is finite and the values are
// immutable constants; search code matches on Roles exhaustively.
type Topology struct {
	// Name identifies the topology in results and messages.
	Name string

	// Roles lists the connection role at each position, source to load.
	Roles []Role
}

// The fixed topology set.
var (
	// LSection is the two-element ladder: in-line then to-ground.
	LSection = Topology{Name: "L-section", Roles: []Role{InLine, ToGround}}

	// PiSection is the three-element ladder: to-ground, in-line, to-ground.
	PiSection = Topology{Name: "Pi-section", Roles: []Role{ToGround, InLine, ToGround}}

	// TSection is the three-element ladder: in-line, to-ground, in-line.
	TSection = Topology{Name: "T-section", Roles: []Role{InLine, ToGround, InLine}}
)

// Size returns the number of element positions.
func (t Topology) Size() int { return len(t.Roles) }
