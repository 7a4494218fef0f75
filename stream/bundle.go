package stream

// Kind discriminates which payload field of a Bundle is populated.
type Kind int

const (
	IonKind Kind = iota
	RangeKind
	VoxelKind
	PlotKind
	DrawKind
)

func (k Kind) String() string {
	switch k {
	case IonKind:
		return "ion"
	case RangeKind:
		return "range"
	case VoxelKind:
		return "voxel"
	case PlotKind:
		return "plot"
	case DrawKind:
		return "draw"
	default:
		return "unknown"
	}
}

// Bundle is the tagged union a filter stage produces or consumes (spec
// §3 "Filter stream bundle"). Exactly one payload field is populated,
// selected by Kind.
type Bundle struct {
	Kind Kind

	Ion   *IonStream
	Range *RangeStream
	Voxel *VoxelStream
	Plot  *PlotStream
	Draw  *DrawStream
}

func NewIonBundle(s *IonStream) Bundle     { return Bundle{Kind: IonKind, Ion: s} }
func NewRangeBundle(s *RangeStream) Bundle { return Bundle{Kind: RangeKind, Range: s} }
func NewVoxelBundle(s *VoxelStream) Bundle { return Bundle{Kind: VoxelKind, Voxel: s} }
func NewPlotBundle(s *PlotStream) Bundle   { return Bundle{Kind: PlotKind, Plot: s} }
func NewDrawBundle(s *DrawStream) Bundle   { return Bundle{Kind: DrawKind, Draw: s} }
