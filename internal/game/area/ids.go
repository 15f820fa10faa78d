package area

// Named locations. Values match the host client's level table.
const (
	None                     ID = 0
	RogueEncampment          ID = 1
	BloodMoor                ID = 2
	ColdPlains               ID = 3
	StonyField               ID = 4
	DarkWood                 ID = 5
	BlackMarsh               ID = 6
	TamoeHighland            ID = 7
	DenOfEvil                ID = 8
	CaveLevel1               ID = 9
	UndergroundPassageLevel1 ID = 10
	HoleLevel1               ID = 11
	PitLevel1                ID = 12
	CaveLevel2               ID = 13
	UndergroundPassageLevel2 ID = 14
	HoleLevel2               ID = 15
	PitLevel2                ID = 16
	BurialGrounds            ID = 17
	Crypt                    ID = 18
	Mausoleum                ID = 19
	ForgottenTower           ID = 20
	TowerCellarLevel1        ID = 21
	TowerCellarLevel2        ID = 22
	TowerCellarLevel3        ID = 23
	TowerCellarLevel4        ID = 24
	TowerCellarLevel5        ID = 25
	MonasteryGate            ID = 26
	OuterCloister            ID = 27
	Barracks                 ID = 28
	JailLevel1               ID = 29
	JailLevel2               ID = 30
	JailLevel3               ID = 31
	InnerCloister            ID = 32
	Cathedral                ID = 33
	CatacombsLevel1          ID = 34
	CatacombsLevel2          ID = 35
	CatacombsLevel3          ID = 36
	CatacombsLevel4          ID = 37
	Tristram                 ID = 38
	MooMooFarm               ID = 39
	LutGholein               ID = 40
	RockyWaste               ID = 41
	DryHills                 ID = 42
	FarOasis                 ID = 43
	LostCity                 ID = 44
	ValleyOfSnakes           ID = 45
	CanyonOfTheMagi          ID = 46
	A2SewersLevel1           ID = 47
	A2SewersLevel2           ID = 48
	A2SewersLevel3           ID = 49
	HaremLevel1              ID = 50
	HaremLevel2              ID = 51
	PalaceCellarLevel1       ID = 52
	PalaceCellarLevel2       ID = 53
	PalaceCellarLevel3       ID = 54
	StonyTombLevel1          ID = 55
	HallsOfTheDeadLevel1     ID = 56
	HallsOfTheDeadLevel2     ID = 57
	ClawViperTempleLevel1    ID = 58
	StonyTombLevel2          ID = 59
	HallsOfTheDeadLevel3     ID = 60
	ClawViperTempleLevel2    ID = 61
	MaggotLairLevel1         ID = 62
	MaggotLairLevel2         ID = 63
	MaggotLairLevel3         ID = 64
	AncientTunnels           ID = 65
	TalRashasTombLevel1      ID = 66
	TalRashasTombLevel2      ID = 67
	TalRashasTombLevel3      ID = 68
	TalRashasTombLevel4      ID = 69
	TalRashasTombLevel5      ID = 70
	TalRashasTombLevel6      ID = 71
	TalRashasTombLevel7      ID = 72
	DurielsLair              ID = 73
	ArcaneSanctuary          ID = 74
	KurastDocktown           ID = 75
	SpiderForest             ID = 76
	GreatMarsh               ID = 77
	FlayerJungle             ID = 78
	LowerKurast              ID = 79
	KurastBazaar             ID = 80
	UpperKurast              ID = 81
	KurastCauseway           ID = 82
	Travincal                ID = 83
	SpiderCave               ID = 84
	SpiderCavern             ID = 85
	SwampyPitLevel1          ID = 86
	SwampyPitLevel2          ID = 87
	FlayerDungeonLevel1      ID = 88
	FlayerDungeonLevel2      ID = 89
	SwampyPitLevel3          ID = 90
	FlayerDungeonLevel3      ID = 91
	A3SewersLevel1           ID = 92
	A3SewersLevel2           ID = 93
	RuinedTemple             ID = 94
	DisusedFane              ID = 95
	ForgottenReliquary       ID = 96
	ForgottenTemple          ID = 97
	RuinedFane               ID = 98
	DisusedReliquary         ID = 99
	DuranceOfHateLevel1      ID = 100
	DuranceOfHateLevel2      ID = 101
	DuranceOfHateLevel3      ID = 102
	ThePandemoniumFortress   ID = 103
	OuterSteppes             ID = 104
	PlainsOfDespair          ID = 105
	CityOfTheDamned          ID = 106
	RiverOfFlame             ID = 107
	ChaosSanctuary           ID = 108
	Harrogath                ID = 109
	BloodyFoothills          ID = 110
	FrigidHighlands          ID = 111
	ArreatPlateau            ID = 112
	CrystalizedPassage       ID = 113
	FrozenRiver              ID = 114
	GlacialTrail             ID = 115
	DrifterCavern            ID = 116
	FrozenTundra             ID = 117
	AncientsWay              ID = 118
	IcyCellar                ID = 119
	ArreatSummit             ID = 120
	NihlathaksTemple         ID = 121
	HallsOfAnguish           ID = 122
	HallsOfPain              ID = 123
	HallsOfVaught            ID = 124
	Abaddon                  ID = 125
	PitOfAcheron             ID = 126
	InfernalPit              ID = 127
	TheWorldstoneKeepLevel1  ID = 128
	TheWorldstoneKeepLevel2  ID = 129
	TheWorldstoneKeepLevel3  ID = 130
	ThroneOfDestruction      ID = 131
	TheWorldstoneChamber     ID = 132
	MatronsDen               ID = 133
	ForgottenSands           ID = 134
	FurnaceOfPain            ID = 135
	Tristram2                ID = 136
)

// MaxID is the highest known location.
const MaxID = Tristram2

var names = [...]string{
	None:                     "None",
	RogueEncampment:          "Rogue Encampment",
	BloodMoor:                "Blood Moor",
	ColdPlains:               "Cold Plains",
	StonyField:               "Stony Field",
	DarkWood:                 "Dark Wood",
	BlackMarsh:               "Black Marsh",
	TamoeHighland:            "Tamoe Highland",
	DenOfEvil:                "Den of Evil",
	CaveLevel1:               "Cave Level 1",
	UndergroundPassageLevel1: "Underground Passage Level 1",
	HoleLevel1:               "Hole Level 1",
	PitLevel1:                "Pit Level 1",
	CaveLevel2:               "Cave Level 2",
	UndergroundPassageLevel2: "Underground Passage Level 2",
	HoleLevel2:               "Hole Level 2",
	PitLevel2:                "Pit Level 2",
	BurialGrounds:            "Burial Grounds",
	Crypt:                    "Crypt",
	Mausoleum:                "Mausoleum",
	ForgottenTower:           "Forgotten Tower",
	TowerCellarLevel1:        "Tower Cellar Level 1",
	TowerCellarLevel2:        "Tower Cellar Level 2",
	TowerCellarLevel3:        "Tower Cellar Level 3",
	TowerCellarLevel4:        "Tower Cellar Level 4",
	TowerCellarLevel5:        "Tower Cellar Level 5",
	MonasteryGate:            "Monastery Gate",
	OuterCloister:            "Outer Cloister",
	Barracks:                 "Barracks",
	JailLevel1:               "Jail Level 1",
	JailLevel2:               "Jail Level 2",
	JailLevel3:               "Jail Level 3",
	InnerCloister:            "Inner Cloister",
	Cathedral:                "Cathedral",
	CatacombsLevel1:          "Catacombs Level 1",
	CatacombsLevel2:          "Catacombs Level 2",
	CatacombsLevel3:          "Catacombs Level 3",
	CatacombsLevel4:          "Catacombs Level 4",
	Tristram:                 "Tristram",
	MooMooFarm:               "Moo Moo Farm",
	LutGholein:               "Lut Gholein",
	RockyWaste:               "Rocky Waste",
	DryHills:                 "Dry Hills",
	FarOasis:                 "Far Oasis",
	LostCity:                 "Lost City",
	ValleyOfSnakes:           "Valley of Snakes",
	CanyonOfTheMagi:          "Canyon of the Magi",
	A2SewersLevel1:           "A2 Sewers Level 1",
	A2SewersLevel2:           "A2 Sewers Level 2",
	A2SewersLevel3:           "A2 Sewers Level 3",
	HaremLevel1:              "Harem Level 1",
	HaremLevel2:              "Harem Level 2",
	PalaceCellarLevel1:       "Palace Cellar Level 1",
	PalaceCellarLevel2:       "Palace Cellar Level 2",
	PalaceCellarLevel3:       "Palace Cellar Level 3",
	StonyTombLevel1:          "Stony Tomb Level 1",
	HallsOfTheDeadLevel1:     "Halls of the Dead Level 1",
	HallsOfTheDeadLevel2:     "Halls of the Dead Level 2",
	ClawViperTempleLevel1:    "Claw Viper Temple Level 1",
	StonyTombLevel2:          "Stony Tomb Level 2",
	HallsOfTheDeadLevel3:     "Halls of the Dead Level 3",
	ClawViperTempleLevel2:    "Claw Viper Temple Level 2",
	MaggotLairLevel1:         "Maggot Lair Level 1",
	MaggotLairLevel2:         "Maggot Lair Level 2",
	MaggotLairLevel3:         "Maggot Lair Level 3",
	AncientTunnels:           "Ancient Tunnels",
	TalRashasTombLevel1:      "Tal Rashas Tomb Level 1",
	TalRashasTombLevel2:      "Tal Rashas Tomb Level 2",
	TalRashasTombLevel3:      "Tal Rashas Tomb Level 3",
	TalRashasTombLevel4:      "Tal Rashas Tomb Level 4",
	TalRashasTombLevel5:      "Tal Rashas Tomb Level 5",
	TalRashasTombLevel6:      "Tal Rashas Tomb Level 6",
	TalRashasTombLevel7:      "Tal Rashas Tomb Level 7",
	DurielsLair:              "Duriels Lair",
	ArcaneSanctuary:          "Arcane Sanctuary",
	KurastDocktown:           "Kurast Docktown",
	SpiderForest:             "Spider Forest",
	GreatMarsh:               "Great Marsh",
	FlayerJungle:             "Flayer Jungle",
	LowerKurast:              "Lower Kurast",
	KurastBazaar:             "Kurast Bazaar",
	UpperKurast:              "Upper Kurast",
	KurastCauseway:           "Kurast Causeway",
	Travincal:                "Travincal",
	SpiderCave:               "Spider Cave",
	SpiderCavern:             "Spider Cavern",
	SwampyPitLevel1:          "Swampy Pit Level 1",
	SwampyPitLevel2:          "Swampy Pit Level 2",
	FlayerDungeonLevel1:      "Flayer Dungeon Level 1",
	FlayerDungeonLevel2:      "Flayer Dungeon Level 2",
	SwampyPitLevel3:          "Swampy Pit Level 3",
	FlayerDungeonLevel3:      "Flayer Dungeon Level 3",
	A3SewersLevel1:           "A3 Sewers Level 1",
	A3SewersLevel2:           "A3 Sewers Level 2",
	RuinedTemple:             "Ruined Temple",
	DisusedFane:              "Disused Fane",
	ForgottenReliquary:       "Forgotten Reliquary",
	ForgottenTemple:          "Forgotten Temple",
	RuinedFane:               "Ruined Fane",
	DisusedReliquary:         "Disused Reliquary",
	DuranceOfHateLevel1:      "Durance of Hate Level 1",
	DuranceOfHateLevel2:      "Durance of Hate Level 2",
	DuranceOfHateLevel3:      "Durance of Hate Level 3",
	ThePandemoniumFortress:   "The Pandemonium Fortress",
	OuterSteppes:             "Outer Steppes",
	PlainsOfDespair:          "Plains of Despair",
	CityOfTheDamned:          "City of the Damned",
	RiverOfFlame:             "River of Flame",
	ChaosSanctuary:           "Chaos Sanctuary",
	Harrogath:                "Harrogath",
	BloodyFoothills:          "Bloody Foothills",
	FrigidHighlands:          "Frigid Highlands",
	ArreatPlateau:            "Arreat Plateau",
	CrystalizedPassage:       "Crystalized Passage",
	FrozenRiver:              "Frozen River",
	GlacialTrail:             "Glacial Trail",
	DrifterCavern:            "Drifter Cavern",
	FrozenTundra:             "Frozen Tundra",
	AncientsWay:              "Ancients Way",
	IcyCellar:                "Icy Cellar",
	ArreatSummit:             "Arreat Summit",
	NihlathaksTemple:         "Nihlathaks Temple",
	HallsOfAnguish:           "Halls of Anguish",
	HallsOfPain:              "Halls of Pain",
	HallsOfVaught:            "Halls of Vaught",
	Abaddon:                  "Abaddon",
	PitOfAcheron:             "Pit of Acheron",
	InfernalPit:              "Infernal Pit",
	TheWorldstoneKeepLevel1:  "The Worldstone Keep Level 1",
	TheWorldstoneKeepLevel2:  "The Worldstone Keep Level 2",
	TheWorldstoneKeepLevel3:  "The Worldstone Keep Level 3",
	ThroneOfDestruction:      "Throne of Destruction",
	TheWorldstoneChamber:     "The Worldstone Chamber",
	MatronsDen:               "Matrons Den",
	ForgottenSands:           "Forgotten Sands",
	FurnaceOfPain:            "Furnace of Pain",
	Tristram2:                "Tristram 2",
}
