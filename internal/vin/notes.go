package vin

const (
	noteSLXTachometer = "SLX + Tachometer Package: Center console & Sport steering wheel"
	noteGTEquipment   = "GT Equipment: Sport steering wheel, Special gear stick & Quick steering ratio"
)

// Notes returns equipment implied by option combinations that have no
// position of their own in the VIN.
func Notes(r *Result) []string {
	if r == nil {
		return nil
	}
	version := r.Code(KeyVersion)
	switch {
	case version == "G" && r.Code(KeyInstrumentPanel) == "M":
		return []string{noteSLXTachometer}
	case version == "P":
		return []string{noteGTEquipment}
	}
	return nil
}
