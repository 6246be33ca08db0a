// Package catalog holds the static registry of spectral index definitions.
// Every index is a declarative record; adding one never touches matcher or
// builder code.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// role derives a RoleSpec from the wavelength window used in the literature:
// the center is the window midpoint, the tolerance its half-width.
func role(id string, lo, hi float64) RoleSpec {
	return RoleSpec{ID: id, CenterNm: (lo + hi) / 2, ToleranceNm: (hi - lo) / 2}
}

func rng(min, max float64) *Range {
	return &Range{Min: min, Max: max}
}

var indices = []SpectralIndex{
	// Vegetation: general monitoring and biomass estimation.
	{
		Name:        "NDVI",
		Description: "Normalized Difference Vegetation Index",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("RED", 620, 690), role("NIR", 760, 900)},
		Formula:     "({NIR} - {RED}) / ({NIR} + {RED})",
		Range:       rng(-1, 1),
		Reference:   "Rouse et al. 1974",
	},
	{
		Name:        "EVI",
		Description: "Enhanced Vegetation Index",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("BLUE", 450, 520), role("RED", 620, 690), role("NIR", 760, 900)},
		Formula:     "2.5 * ({NIR} - {RED}) / ({NIR} + 6 * {RED} - 7.5 * {BLUE} + 1)",
		Range:       rng(-1, 1),
		Reference:   "Huete et al. 2002",
	},
	{
		Name:        "SAVI",
		Description: "Soil Adjusted Vegetation Index",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("RED", 620, 690), role("NIR", 760, 900)},
		Formula:     "((1 + 0.5) * ({NIR} - {RED})) / ({NIR} + {RED} + 0.5)",
		Range:       rng(-1, 1),
		Reference:   "Huete 1988",
	},
	{
		Name:        "MSAVI",
		Description: "Modified Soil Adjusted Vegetation Index",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("RED", 620, 690), role("NIR", 760, 900)},
		Formula:     "(2 * {NIR} + 1 - sqrt((2 * {NIR} + 1)^2 - 8 * ({NIR} - {RED}))) / 2",
		Reference:   "Qi et al. 1994",
	},
	{
		Name:        "GNDVI",
		Description: "Green Normalized Difference Vegetation Index",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("NIR", 760, 900)},
		Formula:     "({NIR} - {GREEN}) / ({NIR} + {GREEN})",
		Range:       rng(-1, 1),
		Reference:   "Gitelson et al. 1996",
	},
	{
		Name:        "NDRE",
		Description: "Normalized Difference Red Edge",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("REDEDGE", 690, 730), role("NIR", 760, 900)},
		Formula:     "({NIR} - {REDEDGE}) / ({NIR} + {REDEDGE})",
		Range:       rng(-1, 1),
		Reference:   "Gitelson and Merzlyak 1994",
	},
	{
		Name:        "CIrededge",
		Description: "Chlorophyll Index Red Edge",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("REDEDGE", 690, 730), role("NIR", 760, 900)},
		Formula:     "({NIR} / {REDEDGE}) - 1",
		Reference:   "Gitelson et al. 2003",
	},
	{
		Name:        "MTCI",
		Description: "MERIS Terrestrial Chlorophyll Index",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("RED", 620, 690), role("REDEDGE", 690, 730), role("NIR", 760, 900)},
		Formula:     "({NIR} - {REDEDGE}) / ({REDEDGE} - {RED})",
		Reference:   "Dash and Curran 2004",
	},
	{
		Name:        "MCARI",
		Description: "Modified Chlorophyll Absorption Ratio Index",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("RED", 620, 690), role("REDEDGE", 690, 730)},
		Formula:     "(({REDEDGE} - {RED}) - 0.2 * ({REDEDGE} - {GREEN})) * ({REDEDGE} / {RED})",
		Reference:   "Daughtry et al. 2000",
	},
	{
		Name:        "REIP",
		Description: "Red Edge Inflection Point",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("RED", 620, 690), role("RE1", 697, 712), role("RE2", 732, 748), role("NIR", 760, 900)},
		Formula:     "700 + 40 * ((({RED} + {NIR}) / 2) - {RE1}) / ({RE2} - {RE1})",
		Reference:   "Guyot et al. 1988",
	},
	{
		Name:        "ARVI",
		Description: "Atmospherically Resistant Vegetation Index",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("BLUE", 450, 520), role("RED", 620, 690), role("NIR", 760, 900)},
		Formula:     "({NIR} - (2 * {RED} - {BLUE})) / ({NIR} + (2 * {RED} - {BLUE}))",
		Reference:   "Kaufman and Tanre 1992",
	},
	{
		Name:        "VARI",
		Description: "Visible Atmospherically Resistant Index",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("BLUE", 450, 520), role("GREEN", 520, 600), role("RED", 620, 690)},
		Formula:     "({GREEN} - {RED}) / ({GREEN} + {RED} - {BLUE})",
		Reference:   "Gitelson et al. 2002",
	},
	{
		Name:        "DVI",
		Description: "Difference Vegetation Index",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("RED", 620, 690), role("NIR", 760, 900)},
		Formula:     "{NIR} - {RED}",
		Reference:   "Tucker 1979",
	},
	{
		Name:        "TVI",
		Description: "Triangular Vegetation Index",
		Theme:       Vegetation,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("RED", 620, 690), role("NIR", 760, 900)},
		Formula:     "0.5 * (120 * ({NIR} - {GREEN}) - 200 * ({RED} - {GREEN}))",
		Reference:   "Broge and Leblanc 2001",
	},

	// Pigments: chlorophyll, anthocyanin and carotenoid content.
	{
		Name:        "ARI1",
		Description: "Anthocyanin Reflectance Index 1",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("REDEDGE", 690, 730)},
		Formula:     "(1 / {GREEN}) - (1 / {REDEDGE})",
		Reference:   "Gitelson et al. 2001",
	},
	{
		Name:        "ARI2",
		Description: "Anthocyanin Reflectance Index 2",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("REDEDGE", 690, 730), role("NIR", 760, 900)},
		Formula:     "{NIR} * ((1 / {GREEN}) - (1 / {REDEDGE}))",
		Reference:   "Gitelson et al. 2001",
	},
	{
		Name:        "CRI550",
		Description: "Carotenoid Reflectance Index 550",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("B510", 505, 515), role("B550", 545, 555)},
		Formula:     "(1 / {B510}) - (1 / {B550})",
		Reference:   "Gitelson et al. 2002",
	},
	{
		Name:        "CRI700",
		Description: "Carotenoid Reflectance Index 700",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("B510", 505, 515), role("B700", 695, 705)},
		Formula:     "(1 / {B510}) - (1 / {B700})",
		Reference:   "Gitelson et al. 2002",
	},
	{
		Name:        "CARI",
		Description: "Chlorophyll Absorption Ratio Index",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("B550", 545, 555), role("RED", 620, 690), role("RE700", 695, 705)},
		Formula:     "({RE700} / {RED}) * abs((({B550} - {RED}) / {RE700}) + {RED} - {B550})",
		Reference:   "Kim et al. 1994",
	},
	{
		Name:        "MCARIOSAVI",
		Description: "MCARI/OSAVI ratio - Chlorophyll content",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("RED", 620, 690), role("RE700", 695, 705), role("NIR", 760, 900)},
		Formula:     "((({RE700} - {RED}) - 0.2 * ({RE700} - {GREEN})) * ({RE700} / {RED})) / ((1.16 * ({NIR} - {RED}) / ({NIR} + {RED} + 0.16)))",
		Reference:   "Daughtry et al. 2000",
	},
	{
		Name:        "GITELSON",
		Description: "Gitelson Chlorophyll Index",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("NIR", 760, 900)},
		Formula:     "({NIR} / {GREEN}) - 1",
		Reference:   "Gitelson et al. 2003",
	},
	{
		Name:        "GITELSON2",
		Description: "Gitelson Chlorophyll Index 2",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("REDEDGE", 690, 730), role("NIR", 760, 900)},
		Formula:     "({NIR} / {REDEDGE}) - 1",
		Reference:   "Gitelson et al. 2003",
	},
	{
		Name:        "MCARI1",
		Description: "Modified Chlorophyll Absorption Ratio Index 1",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("RED", 620, 690), role("NIR", 760, 900)},
		Formula:     "1.2 * (2.5 * ({NIR} - {RED}) - 1.3 * ({NIR} - {GREEN}))",
		Reference:   "Haboudane et al. 2004",
	},
	{
		Name:        "MCARI2",
		Description: "Modified Chlorophyll Absorption Ratio Index 2",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("RED", 620, 690), role("NIR", 760, 900)},
		Formula:     "(1.5 * (2.5 * ({NIR} - {RED}) - 1.3 * ({NIR} - {GREEN}))) / sqrt((2 * {NIR} + 1)^2 - (6 * {NIR} - 5 * sqrt({RED})) - 0.5)",
		Reference:   "Haboudane et al. 2004",
	},
	{
		Name:        "RDVI",
		Description: "Renormalized Difference Vegetation Index",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("RED", 620, 690), role("NIR", 760, 900)},
		Formula:     "({NIR} - {RED}) / sqrt({NIR} + {RED})",
		Reference:   "Roujean and Breon 1995",
	},
	{
		Name:        "MARI",
		Description: "Modified Anthocyanin Reflectance Index",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("REDEDGE", 690, 730), role("NIR", 760, 900)},
		Formula:     "((1 / {GREEN}) - (1 / {REDEDGE})) * {NIR}",
		Reference:   "Gitelson et al. 2006",
	},
	{
		Name:        "VREI1",
		Description: "Vogelmann Red Edge Index 1",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("RE720", 715, 725), role("RE740", 735, 745)},
		Formula:     "{RE740} / {RE720}",
		Reference:   "Vogelmann et al. 1993",
	},
	{
		Name:        "VREI2",
		Description: "Vogelmann Red Edge Index 2",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("RE715", 710, 720), role("RE726", 721, 731), role("RE734", 729, 739), role("RE747", 742, 752)},
		Formula:     "({RE734} - {RE747}) / ({RE715} + {RE726})",
		Reference:   "Vogelmann et al. 1993",
	},
	{
		Name:        "DD",
		Description: "Double Difference Index - Chlorophyll",
		Theme:       Pigments,
		Roles:       []RoleSpec{role("RE672", 667, 677), role("RE701", 696, 706), role("RE720", 715, 725), role("RE749", 744, 754)},
		Formula:     "({RE749} - {RE720}) - ({RE701} - {RE672})",
		Reference:   "le Maire et al. 2004",
	},

	// Metabolism: water content, photosynthetic efficiency, physiology.
	{
		Name:        "WI",
		Description: "Water Index - Leaf water content",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("B900", 895, 905), role("B970", 965, 975)},
		Formula:     "{B900} / {B970}",
		Reference:   "Penuelas et al. 1997",
	},
	{
		Name:        "NDWI1240",
		Description: "Normalized Difference Water Index 1240",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("B860", 855, 865), role("B1240", 1235, 1245)},
		Formula:     "({B860} - {B1240}) / ({B860} + {B1240})",
		Reference:   "Gao 1996",
	},
	{
		Name:        "NDWI2130",
		Description: "Normalized Difference Water Index 2130",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("B860", 855, 865), role("B2130", 2125, 2135)},
		Formula:     "({B860} - {B2130}) / ({B860} + {B2130})",
		Reference:   "Gao 1996",
	},
	{
		Name:        "LWCI",
		Description: "Leaf Water Content Index",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("B900", 895, 905), role("B955", 950, 960), role("B970", 965, 975)},
		Formula:     "log(1 - ({B970} - {B900})) / log(1 - ({B970} - {B955}))",
		Reference:   "Galvao et al. 2005",
	},
	{
		Name:        "NDII",
		Description: "Normalized Difference Infrared Index",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("B819", 814, 824), role("B1649", 1644, 1654)},
		Formula:     "({B819} - {B1649}) / ({B819} + {B1649})",
		Reference:   "Hardisky et al. 1983",
	},
	{
		Name:        "SRWI",
		Description: "Simple Ratio Water Index",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("B860", 855, 865), role("B1240", 1235, 1245)},
		Formula:     "{B860} / {B1240}",
		Reference:   "Zarco-Tejada et al. 2003",
	},
	{
		Name:        "DATT",
		Description: "Datt Index - Leaf pigment",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("B680", 675, 685), role("B710", 705, 715), role("B850", 845, 855)},
		Formula:     "({B850} - {B710}) / ({B850} - {B680})",
		Reference:   "Datt 1999",
	},
	{
		Name:        "CARTER1",
		Description: "Carter Index 1 - Stress",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("B420", 415, 425), role("B695", 690, 700)},
		Formula:     "{B695} / {B420}",
		Reference:   "Carter 1994",
	},
	{
		Name:        "CARTER2",
		Description: "Carter Index 2 - Stress",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("B695", 690, 700), role("B760", 755, 765)},
		Formula:     "{B695} / {B760}",
		Reference:   "Carter 1994",
	},
	{
		Name:        "GMI",
		Description: "Gamon Index - Photosynthetic efficiency",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("B550", 545, 555), role("B750", 745, 755)},
		Formula:     "{B750} / {B550}",
		Reference:   "Gamon et al. 1990",
	},
	{
		Name:        "NPQI",
		Description: "Normalized Phaeophytinization Index",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("B415", 410, 420), role("B435", 430, 440)},
		Formula:     "({B415} - {B435}) / ({B415} + {B435})",
		Reference:   "Barnes et al. 1992",
	},
	{
		Name:        "NPCI",
		Description: "Normalized Pigment Chlorophyll Index",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("B430", 425, 435), role("B680", 675, 685)},
		Formula:     "({B680} - {B430}) / ({B680} + {B430})",
		Reference:   "Penuelas et al. 1994",
	},
	{
		Name:        "RGRI",
		Description: "Red-Green Ratio Index",
		Theme:       Metabolism,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("RED", 620, 690)},
		Formula:     "{RED} / {GREEN}",
		Reference:   "Gamon and Surfus 1999",
	},

	// Biochemical: cellulose, lignin, nitrogen.
	{
		Name:        "CAI",
		Description: "Cellulose Absorption Index",
		Theme:       Biochemical,
		Roles:       []RoleSpec{role("SWIR1", 2000, 2100), role("SWIR2", 2100, 2300), role("SWIR3", 2000, 2100)},
		Formula:     "0.5 * ({SWIR1} + {SWIR2}) - {SWIR3}",
		Reference:   "Nagler et al. 2000",
	},
	{
		Name:        "NDLI",
		Description: "Normalized Difference Lignin Index",
		Theme:       Biochemical,
		Roles:       []RoleSpec{role("SWIR1", 1680, 1750), role("SWIR2", 1754, 1850)},
		Formula:     "(log(1 / {SWIR1}) - log(1 / {SWIR2})) / (log(1 / {SWIR1}) + log(1 / {SWIR2}))",
		Reference:   "Serrano et al. 2002",
	},
	{
		Name:        "PRI",
		Description: "Photochemical Reflectance Index",
		Theme:       Biochemical,
		Roles:       []RoleSpec{role("GREEN1", 528, 532), role("GREEN2", 565, 570)},
		Formula:     "({GREEN1} - {GREEN2}) / ({GREEN1} + {GREEN2})",
		Range:       rng(-1, 1),
		Reference:   "Gamon et al. 1992",
	},
	{
		Name:        "SIPI",
		Description: "Structure Insensitive Pigment Index",
		Theme:       Biochemical,
		Roles:       []RoleSpec{role("BLUE", 445, 455), role("RED", 620, 690), role("NIR", 760, 900)},
		Formula:     "({NIR} - {BLUE}) / ({NIR} - {RED})",
		Reference:   "Penuelas et al. 1995",
	},
	{
		Name:        "PSRI",
		Description: "Plant Senescence Reflectance Index",
		Theme:       Biochemical,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("RED", 620, 690), role("REDEDGE", 690, 730)},
		Formula:     "({RED} - {GREEN}) / {REDEDGE}",
		Reference:   "Merzlyak et al. 1999",
	},

	// Water body detection and monitoring.
	{
		Name:        "NDWI",
		Description: "Normalized Difference Water Index",
		Theme:       Water,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("NIR", 760, 900)},
		Formula:     "({GREEN} - {NIR}) / ({GREEN} + {NIR})",
		Range:       rng(-1, 1),
		Reference:   "McFeeters 1996",
	},
	{
		Name:        "MNDWI",
		Description: "Modified Normalized Difference Water Index",
		Theme:       Water,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("SWIR", 1550, 1750)},
		Formula:     "({GREEN} - {SWIR}) / ({GREEN} + {SWIR})",
		Range:       rng(-1, 1),
		Reference:   "Xu 2006",
	},
	{
		Name:        "NDMI",
		Description: "Normalized Difference Moisture Index",
		Theme:       Water,
		Roles:       []RoleSpec{role("NIR", 760, 900), role("SWIR", 1550, 1750)},
		Formula:     "({NIR} - {SWIR}) / ({NIR} + {SWIR})",
		Range:       rng(-1, 1),
		Reference:   "Wilson and Sader 2002",
	},

	// Soil properties and composition.
	{
		Name:        "BI",
		Description: "Brightness Index",
		Theme:       Soil,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("RED", 620, 690)},
		Formula:     "sqrt(({RED}^2 + {GREEN}^2) / 2)",
		Reference:   "Escadafal et al. 1994",
	},
	{
		Name:        "CI",
		Description: "Coloration Index",
		Theme:       Soil,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("RED", 620, 690)},
		Formula:     "({RED} - {GREEN}) / {RED}",
		Reference:   "Escadafal et al. 1994",
	},
	{
		Name:        "RI",
		Description: "Redness Index",
		Theme:       Soil,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("RED", 620, 690)},
		Formula:     "{RED}^2 / ({GREEN}^3)",
		Reference:   "Madeira et al. 1997",
	},

	// Urban / built-up areas.
	{
		Name:        "NDBI",
		Description: "Normalized Difference Built-up Index",
		Theme:       Urban,
		Roles:       []RoleSpec{role("NIR", 760, 900), role("SWIR", 1550, 1750)},
		Formula:     "({SWIR} - {NIR}) / ({SWIR} + {NIR})",
		Range:       rng(-1, 1),
		Reference:   "Zha et al. 2003",
	},
	{
		Name:        "UI",
		Description: "Urban Index",
		Theme:       Urban,
		Roles:       []RoleSpec{role("NIR", 760, 900), role("SWIR", 1550, 1750)},
		Formula:     "({SWIR} - {NIR}) / ({SWIR} + {NIR})",
		Reference:   "Kawamura et al. 1996",
	},

	// Plant stress detection.
	{
		Name:        "MSI",
		Description: "Moisture Stress Index",
		Theme:       Stress,
		Roles:       []RoleSpec{role("NIR", 760, 900), role("SWIR", 1550, 1750)},
		Formula:     "{SWIR} / {NIR}",
		Reference:   "Rock et al. 1986",
	},
	{
		Name:        "NDNI",
		Description: "Normalized Difference Nitrogen Index",
		Theme:       Stress,
		Roles:       []RoleSpec{role("NIR1", 1510, 1520), role("NIR2", 1680, 1690)},
		Formula:     "(log(1 / {NIR1}) - log(1 / {NIR2})) / (log(1 / {NIR1}) + log(1 / {NIR2}))",
		Reference:   "Serrano et al. 2002",
	},
	{
		Name:        "TCARI",
		Description: "Transformed Chlorophyll Absorption Ratio",
		Theme:       Stress,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("RED", 620, 690), role("REDEDGE", 690, 730)},
		Formula:     "3 * (({REDEDGE} - {RED}) - 0.2 * ({REDEDGE} - {GREEN}) * ({REDEDGE} / {RED}))",
		Reference:   "Haboudane et al. 2002",
	},

	// Materials: hydrocarbons, plastics, minerals, built materials.
	{
		Name:        "HI",
		Description: "Hydrocarbon Index - Oil & gas detection",
		Theme:       Materials,
		Roles:       []RoleSpec{role("SWIR2200", 2195, 2205), role("SWIR2300", 2295, 2305), role("SWIR2400", 2395, 2405)},
		Formula:     "({SWIR2200} * {SWIR2400}) / ({SWIR2300}^2)",
		Reference:   "Cloutis 1989",
	},
	{
		Name:        "THI",
		Description: "Tentative Hydrocarbon Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("SWIR1730", 1725, 1735), role("SWIR2210", 2205, 2215), role("SWIR2450", 2445, 2455)},
		Formula:     "({SWIR1730} + {SWIR2450}) / (2 * {SWIR2210})",
		Reference:   "Kühn et al. 2004",
	},
	{
		Name:        "OHI",
		Description: "Oil and Hydrocarbon Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("SWIR1650", 1645, 1655), role("SWIR2210", 2205, 2215), role("SWIR2450", 2445, 2455)},
		Formula:     "({SWIR1650} + {SWIR2450}) / {SWIR2210}",
		Reference:   "Lammoglia and Filho 2011",
	},
	{
		Name:        "TPI",
		Description: "Tar/Petroleum Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("SWIR1650", 1645, 1655), role("SWIR2300", 2295, 2305)},
		Formula:     "{SWIR2300} / {SWIR1650}",
		Reference:   "Martinez and Le Toan 2007",
	},
	{
		Name:        "COAL",
		Description: "Coal/Carbon Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("NIR", 760, 900), role("SWIR1600", 1595, 1605), role("SWIR2200", 2195, 2205)},
		Formula:     "({SWIR2200} / {SWIR1600}) * ({SWIR2200} / {NIR})",
		Reference:   "van der Meer 1995",
	},
	{
		Name:        "PLASTIC",
		Description: "Plastic Detection Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("NIR", 760, 900), role("SWIR1600", 1595, 1605), role("SWIR2200", 2195, 2205)},
		Formula:     "({NIR} / {SWIR1600}) - ({SWIR2200} / {SWIR1600})",
		Reference:   "Garaba and Dierssen 2018",
	},
	{
		Name:        "PDI",
		Description: "Plastic Debris Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("RED", 620, 690), role("NIR", 760, 900), role("SWIR1600", 1595, 1605)},
		Formula:     "({NIR} - {RED}) / ({NIR} + {RED}) - ({SWIR1600} - {NIR}) / ({SWIR1600} + {NIR})",
		Reference:   "Biermann et al. 2020",
	},
	{
		Name:        "FPI",
		Description: "Floating Plastic Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("RED", 620, 690), role("NIR", 760, 900), role("SWIR1600", 1595, 1605)},
		Formula:     "{NIR} / ({RED} + {SWIR1600}) * 100",
		Reference:   "Themistocleous et al. 2020",
	},
	{
		Name:        "RSWIR",
		Description: "Reversed SWIR Index - Marine debris",
		Theme:       Materials,
		Roles:       []RoleSpec{role("NIR", 760, 900), role("SWIR1600", 1595, 1605)},
		Formula:     "{SWIR1600} / {NIR}",
		Reference:   "Kikaki et al. 2020",
	},
	{
		Name:        "NDPI",
		Description: "Normalized Difference Plastic Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("NIR", 760, 900), role("SWIR1650", 1645, 1655)},
		Formula:     "({SWIR1650} - {NIR}) / ({SWIR1650} + {NIR})",
		Reference:   "Themistocleous et al. 2020",
	},
	{
		Name:        "MPDI",
		Description: "Marine Plastic Detection Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("B490", 485, 495), role("B560", 555, 565), role("B665", 660, 670), role("B865", 860, 870)},
		Formula:     "({B490} - {B560}) / ({B490} + {B560}) + ({B665} - {B865}) / ({B665} + {B865})",
		Reference:   "Biermann et al. 2020",
	},
	{
		Name:        "FERRIC",
		Description: "Ferric Iron Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("B830", 825, 835), role("SWIR1650", 1645, 1655)},
		Formula:     "{SWIR1650} / {B830}",
		Reference:   "Segal 1982",
	},
	{
		Name:        "FERROUS",
		Description: "Ferrous Iron Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("B1550", 1545, 1555), role("SWIR1650", 1645, 1655)},
		Formula:     "{SWIR1650} / {B1550}",
		Reference:   "Segal 1982",
	},
	{
		Name:        "LATERITE",
		Description: "Laterite Index - Iron-rich materials",
		Theme:       Materials,
		Roles:       []RoleSpec{role("RED", 620, 690), role("NIR", 760, 900), role("SWIR1650", 1645, 1655)},
		Formula:     "({SWIR1650} + {RED}) / {NIR}",
		Reference:   "Pour and Hashim 2012",
	},
	{
		Name:        "GOSSAN",
		Description: "Gossan Index - Weathered sulfides",
		Theme:       Materials,
		Roles:       []RoleSpec{role("GREEN", 520, 600), role("RED", 620, 690), role("SWIR1650", 1645, 1655)},
		Formula:     "({RED} * {SWIR1650}) / ({GREEN}^2)",
		Reference:   "Rajendran and Nasir 2019",
	},
	{
		Name:        "SINDEX",
		Description: "S-Index - Soil/sediment composition",
		Theme:       Materials,
		Roles:       []RoleSpec{role("RED", 620, 690), role("NIR", 760, 900)},
		Formula:     "sqrt({RED} * {NIR})",
		Reference:   "Escadafal and Huete 1991",
	},
	{
		Name:        "PAINT",
		Description: "Paint Detection Index (synthetic coatings)",
		Theme:       Materials,
		Roles:       []RoleSpec{role("B450", 445, 455), role("B550", 545, 555), role("B650", 645, 655)},
		Formula:     "({B450} + {B650}) / (2 * {B550})",
		Reference:   "Based on pigment absorption features",
	},
	{
		Name:        "ASPHALT",
		Description: "Asphalt/Bitumen Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("SWIR1600", 1595, 1605), role("SWIR2200", 2195, 2205)},
		Formula:     "({SWIR1600} - {SWIR2200}) / ({SWIR1600} + {SWIR2200})",
		Reference:   "Herold et al. 2004",
	},
	{
		Name:        "CONCRETE",
		Description: "Concrete Detection Index",
		Theme:       Materials,
		Roles:       []RoleSpec{role("B500", 495, 505), role("NIR", 760, 900), role("SWIR2200", 2195, 2205)},
		Formula:     "({B500} + {SWIR2200}) / {NIR}",
		Reference:   "Dópido et al. 2012",
	},
}

var themes = []Theme{
	Vegetation, Pigments, Metabolism, Biochemical,
	Water, Soil, Urban, Stress, Materials,
}

var db = buildDB()

func buildDB() map[string]SpectralIndex {
	m := make(map[string]SpectralIndex, len(indices))
	for _, idx := range indices {
		key := strings.ToUpper(idx.Name)
		if _, dup := m[key]; dup {
			panic(fmt.Sprintf("catalog: duplicate index %s", idx.Name))
		}
		m[key] = idx
	}
	return m
}

// Lookup finds an index by name, case-insensitively.
func Lookup(name string) (SpectralIndex, error) {
	idx, ok := db[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return SpectralIndex{}, fmt.Errorf("%w: %s", ErrUnknownIndex, name)
	}
	return idx, nil
}

// All returns every catalog entry sorted by name.
func All() []SpectralIndex {
	out := make([]SpectralIndex, len(indices))
	copy(out, indices)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByTheme returns the entries of one theme sorted by name. ThemeAll selects
// the whole catalog.
func ByTheme(t Theme) ([]SpectralIndex, error) {
	if t == ThemeAll {
		return All(), nil
	}
	if !validTheme(t) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTheme, t)
	}
	var out []SpectralIndex
	for _, idx := range All() {
		if idx.Theme == t {
			out = append(out, idx)
		}
	}
	return out, nil
}

// Themes returns the thematic groups in display order, without ThemeAll.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// ParseTheme validates a user-supplied theme name.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if t == ThemeAll {
		return t, nil
	}
	if !validTheme(t) {
		return "", fmt.Errorf("%w: %s", ErrUnknownTheme, s)
	}
	return t, nil
}

func validTheme(t Theme) bool {
	for _, known := range themes {
		if t == known {
			return true
		}
	}
	return false
}
