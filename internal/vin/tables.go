package vin

// Code tables as printed on the Rivett build sheet.
var (
	countryCodes = map[string]string{
		"U": "Corris Britain",
	}

	assemblyPlantCodes = map[string]string{
		"A": "Dagenham",
		"B": "Manchester",
		"C": "Saarlouis",
		"K": "Rheine",
	}

	modelCodes = map[string]string{
		"B": "Rivett",
	}

	bodyCodes = map[string]string{
		"B": "2D Pillared Sedan",
	}

	versionCodes = map[string]string{
		"D": "L",
		"E": "LX",
		"G": "SLX",
		"P": "GT",
	}

	yearCodes = map[string]string{
		"L": "1971",
		"M": "1972",
		"N": "1973",
		"P": "1974 (Facelift)",
		"R": "1975",
		"S": "1976",
	}

	monthCodes = map[string]string{
		"C": "01",
		"K": "02",
		"D": "03",
		"E": "04",
		"L": "05",
		"Y": "06",
		"S": "07",
		"T": "08",
		"J": "09",
		"U": "10",
		"M": "11",
		"P": "12",
	}

	driveCodes = map[string]string{
		"1": "RWD",
	}

	engineCodes = map[string]string{
		"NA": "Standard 2.0",
		"NE": "High Performance 2.0",
	}

	gearboxCodes = map[string]string{
		"7": "3-spd Automatic",
		"B": "4-spd Manual",
	}

	axleRatioCodes = map[string]string{
		"S": "3.44",
		"B": "3.75",
		"C": "3.89",
		"N": "4.11",
		"E": "4.44",
	}

	axleLockCodes = map[string]string{
		"A": "Open",
		"B": "LSD",
	}

	bodyColourCodes = map[string]string{
		"A": "Dark Grey",
		"B": "Nature White",
		"C": "Sand",
		"D": "Asphalt Grey",
		"E": "Blue",
		"F": "Sun Yellow",
		"G": "Dark Navy",
		"H": "Royal Red",
		"I": "Brown",
		"J": "Red",
		"K": "Electric Green",
		"L": "White Pearl",
		"M": "Spring Green",
		"R": "Purple",
		"T": "Yellow",
		"U": "Sky Blue",
		"V": "Orange",
		"X": "Navy Blue",
		"Y": "Special",
	}

	vinylRoofCodes = map[string]string{
		"-": "Paint",
		"A": "Black",
		"B": "White",
		"C": "Tan",
		"K": "Blue",
		"M": "Dark Brown",
	}

	interiorTrimCodes = map[string]string{
		"N": "Red",
		"A": "Black",
		"K": "Tan",
		"F": "Blue",
		"Y": "Special",
	}

	radioCodes = map[string]string{
		"-": "Radio delete",
		"J": "Radio",
	}

	instrumentPanelCodes = map[string]string{
		"-": "Standard",
		"G": "Clock",
		"M": "Tachometer",
	}

	windshieldCodes = map[string]string{
		"1": "Clear",
		"2": "Tinted",
		"F": "Sunstrip",
	}

	seatsCodes = map[string]string{
		"8": "Standard",
		"B": "Bucket Style",
	}

	suspensionCodes = map[string]string{
		"A": "Standard",
		"B": "Standard + Stiffened",
		"4": "Lowered",
		"M": "Lowered + Stiffened",
	}

	brakesCodes = map[string]string{
		"-": "Standard",
		"B": "Power Brakes",
	}

	wheelsCodes = map[string]string{
		"A": `13" Steel`,
		"B": `13" Steel + hubcaps`,
		"4": `14" Sport`,
		"M": `14" Steel / 14" Octo`,
	}

	rearWindowCodes = map[string]string{
		"-": "Standard",
		"B": "Heated",
		"M": "Standard + Window Grille",
	}
)
