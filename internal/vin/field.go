package vin

// Field describes one fixed-width VIN segment and its code table.
// A nil code table means the segment is reported verbatim. The table is
// only reachable through Lookup.
type Field struct {
	Key   string
	Name  string
	Len   int
	codes map[string]string
}

const (
	KeyCountry         = "Country"
	KeyAssemblyPlant   = "AssemblyPlant"
	KeyModel           = "Model"
	KeyBody            = "Body"
	KeyVersion         = "Version"
	KeyYear            = "Year"
	KeyMonth           = "Month"
	KeySerial          = "Serial"
	KeyDrive           = "Drive"
	KeyEngine          = "Engine"
	KeyGearbox         = "Gearbox"
	KeyAxleRatio       = "AxleRatio"
	KeyAxleLock        = "AxleLock"
	KeyBodyColour      = "ColorsBody"
	KeyVinylRoof       = "VinylRoof"
	KeyInteriorTrim    = "InteriorTrim"
	KeyRadio           = "Radio"
	KeyInstrumentPanel = "InstrumentPanel"
	KeyWindshield      = "Windshield"
	KeySeats           = "Seats"
	KeySuspension      = "Suspension"
	KeyBrakes          = "PowerBrakes"
	KeyWheels          = "Wheels"
	KeyRearWindow      = "WindowHeater"
)

// fields is the VIN layout in character order.
var fields = []Field{
	{Key: KeyCountry, Name: "COUNTRY", Len: 1, codes: countryCodes},
	{Key: KeyAssemblyPlant, Name: "ASSEMBLY PLANT", Len: 1, codes: assemblyPlantCodes},
	{Key: KeyModel, Name: "MODEL", Len: 1, codes: modelCodes},
	{Key: KeyBody, Name: "BODY TYPE", Len: 1, codes: bodyCodes},
	{Key: KeyVersion, Name: "VERSION", Len: 1, codes: versionCodes},
	{Key: KeyYear, Name: "YEAR", Len: 1, codes: yearCodes},
	{Key: KeyMonth, Name: "MONTH", Len: 1, codes: monthCodes},
	{Key: KeySerial, Name: "SERIAL NUMBER", Len: 5},
	{Key: KeyDrive, Name: "DRIVE", Len: 1, codes: driveCodes},
	{Key: KeyEngine, Name: "ENGINE", Len: 2, codes: engineCodes},
	{Key: KeyGearbox, Name: "GEARBOX", Len: 1, codes: gearboxCodes},
	{Key: KeyAxleRatio, Name: "AXLE RATIO", Len: 1, codes: axleRatioCodes},
	{Key: KeyAxleLock, Name: "AXLE LOCK", Len: 1, codes: axleLockCodes},
	{Key: KeyBodyColour, Name: "BODY COLOUR", Len: 1, codes: bodyColourCodes},
	{Key: KeyVinylRoof, Name: "VINYL ROOF", Len: 1, codes: vinylRoofCodes},
	{Key: KeyInteriorTrim, Name: "INTERIOR TRIM", Len: 1, codes: interiorTrimCodes},
	{Key: KeyRadio, Name: "RADIO", Len: 1, codes: radioCodes},
	{Key: KeyInstrumentPanel, Name: "INSTRUMENT PANEL", Len: 1, codes: instrumentPanelCodes},
	{Key: KeyWindshield, Name: "WINDSHIELD", Len: 1, codes: windshieldCodes},
	{Key: KeySeats, Name: "SEATS", Len: 1, codes: seatsCodes},
	{Key: KeySuspension, Name: "SUSPENSION", Len: 1, codes: suspensionCodes},
	{Key: KeyBrakes, Name: "BRAKES", Len: 1, codes: brakesCodes},
	{Key: KeyWheels, Name: "WHEELS", Len: 1, codes: wheelsCodes},
	{Key: KeyRearWindow, Name: "REAR WINDOW", Len: 1, codes: rearWindowCodes},
}

var length = func() int {
	n := 0
	for _, f := range fields {
		n += f.Len
	}
	return n
}()

// Fields returns a copy of the field layout.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Length is the number of characters in a complete VIN.
func Length() int {
	return length
}

// Lookup returns the label for code, or false when the table has no entry.
func (f Field) Lookup(code string) (string, bool) {
	if f.codes == nil {
		return code, true
	}
	label, ok := f.codes[code]
	return label, ok
}
