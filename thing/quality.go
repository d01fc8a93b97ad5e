package thing

// Quality rates crafted items.
type Quality int

// Quality levels, from worst to best.
const (
	QualityAwful Quality = iota
	QualityPoor
	QualityNormal
	QualityGood
	QualityExcellent
	QualityMasterwork
	QualityLegendary
)

var qualityLabels = [...]string{
	"awful", "poor", "normal", "good", "excellent", "masterwork", "legendary",
}

func (q Quality) String() string {
	if q < QualityAwful || q > QualityLegendary {
		return "unknown"
	}

	return qualityLabels[q]
}

// QualityRange is an inclusive range of qualities.
type QualityRange struct {
	Min Quality `yaml:"min"`
	Max Quality `yaml:"max"`
}

// AllQualities is the range covering every quality.
var AllQualities = QualityRange{Min: QualityAwful, Max: QualityLegendary}

// Includes returns true if q lies within the range.
func (r QualityRange) Includes(q Quality) bool {
	return q >= r.Min && q <= r.Max
}
