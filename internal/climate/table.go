package climate

import "heatpump_check/internal/model"

// table maps the first two postal-code digits to a climate profile. Degree
// days are annual heating-degree-days at a 20/15 °C base.
var table = map[string]model.ClimateProfile{
	"01": {HeatingDegreeDays: 3500, DesignOutdoorC: -14, AvgOutdoorC: 8.9, Region: "Saxony (Dresden)"},
	"02": {HeatingDegreeDays: 3700, DesignOutdoorC: -16, AvgOutdoorC: 8.3, Region: "Upper Lusatia"},
	"04": {HeatingDegreeDays: 3400, DesignOutdoorC: -14, AvgOutdoorC: 9.3, Region: "Leipzig"},
	"06": {HeatingDegreeDays: 3350, DesignOutdoorC: -14, AvgOutdoorC: 9.3, Region: "Saxony-Anhalt (Halle)"},
	"07": {HeatingDegreeDays: 3600, DesignOutdoorC: -14, AvgOutdoorC: 8.6, Region: "East Thuringia"},
	"08": {HeatingDegreeDays: 3800, DesignOutdoorC: -16, AvgOutdoorC: 7.9, Region: "Vogtland"},
	"09": {HeatingDegreeDays: 3900, DesignOutdoorC: -16, AvgOutdoorC: 7.6, Region: "Ore Mountains"},
	"10": {HeatingDegreeDays: 3300, DesignOutdoorC: -14, AvgOutdoorC: 9.6, Region: "Berlin"},
	"12": {HeatingDegreeDays: 3300, DesignOutdoorC: -14, AvgOutdoorC: 9.6, Region: "Berlin"},
	"13": {HeatingDegreeDays: 3300, DesignOutdoorC: -14, AvgOutdoorC: 9.6, Region: "Berlin"},
	"14": {HeatingDegreeDays: 3350, DesignOutdoorC: -14, AvgOutdoorC: 9.4, Region: "Brandenburg (Potsdam)"},
	"15": {HeatingDegreeDays: 3450, DesignOutdoorC: -14, AvgOutdoorC: 9.1, Region: "East Brandenburg"},
	"16": {HeatingDegreeDays: 3500, DesignOutdoorC: -14, AvgOutdoorC: 8.9, Region: "North Brandenburg"},
	"17": {HeatingDegreeDays: 3600, DesignOutdoorC: -14, AvgOutdoorC: 8.6, Region: "Mecklenburg Lake District"},
	"18": {HeatingDegreeDays: 3500, DesignOutdoorC: -12, AvgOutdoorC: 8.9, Region: "Baltic coast"},
	"19": {HeatingDegreeDays: 3450, DesignOutdoorC: -12, AvgOutdoorC: 9.0, Region: "West Mecklenburg"},
	"20": {HeatingDegreeDays: 3300, DesignOutdoorC: -12, AvgOutdoorC: 9.6, Region: "Hamburg"},
	"21": {HeatingDegreeDays: 3300, DesignOutdoorC: -12, AvgOutdoorC: 9.6, Region: "Hamburg"},
	"22": {HeatingDegreeDays: 3300, DesignOutdoorC: -12, AvgOutdoorC: 9.6, Region: "Hamburg"},
	"23": {HeatingDegreeDays: 3400, DesignOutdoorC: -12, AvgOutdoorC: 9.1, Region: "Lübeck"},
	"24": {HeatingDegreeDays: 3450, DesignOutdoorC: -12, AvgOutdoorC: 8.9, Region: "Schleswig-Holstein"},
	"25": {HeatingDegreeDays: 3350, DesignOutdoorC: -10, AvgOutdoorC: 9.2, Region: "North Sea coast"},
	"26": {HeatingDegreeDays: 3300, DesignOutdoorC: -10, AvgOutdoorC: 9.4, Region: "East Frisia"},
	"27": {HeatingDegreeDays: 3300, DesignOutdoorC: -10, AvgOutdoorC: 9.5, Region: "Lower Weser"},
	"28": {HeatingDegreeDays: 3250, DesignOutdoorC: -10, AvgOutdoorC: 9.7, Region: "Bremen"},
	"29": {HeatingDegreeDays: 3450, DesignOutdoorC: -12, AvgOutdoorC: 9.1, Region: "Lüneburg Heath"},
	"30": {HeatingDegreeDays: 3300, DesignOutdoorC: -12, AvgOutdoorC: 9.6, Region: "Hanover"},
	"31": {HeatingDegreeDays: 3400, DesignOutdoorC: -12, AvgOutdoorC: 9.3, Region: "Hildesheim"},
	"32": {HeatingDegreeDays: 3300, DesignOutdoorC: -10, AvgOutdoorC: 9.6, Region: "East Westphalia"},
	"33": {HeatingDegreeDays: 3400, DesignOutdoorC: -12, AvgOutdoorC: 9.3, Region: "Paderborn"},
	"34": {HeatingDegreeDays: 3500, DesignOutdoorC: -12, AvgOutdoorC: 9.0, Region: "North Hesse"},
	"35": {HeatingDegreeDays: 3450, DesignOutdoorC: -12, AvgOutdoorC: 9.2, Region: "Central Hesse"},
	"36": {HeatingDegreeDays: 3700, DesignOutdoorC: -14, AvgOutdoorC: 8.5, Region: "Rhön"},
	"37": {HeatingDegreeDays: 3500, DesignOutdoorC: -12, AvgOutdoorC: 9.0, Region: "Göttingen"},
	"38": {HeatingDegreeDays: 3350, DesignOutdoorC: -12, AvgOutdoorC: 9.5, Region: "Brunswick"},
	"39": {HeatingDegreeDays: 3300, DesignOutdoorC: -14, AvgOutdoorC: 9.6, Region: "Magdeburg"},
	"40": {HeatingDegreeDays: 3000, DesignOutdoorC: -10, AvgOutdoorC: 10.6, Region: "Rhine-Ruhr"},
	"41": {HeatingDegreeDays: 3000, DesignOutdoorC: -10, AvgOutdoorC: 10.6, Region: "Lower Rhine"},
	"42": {HeatingDegreeDays: 3150, DesignOutdoorC: -10, AvgOutdoorC: 10.1, Region: "Bergisches Land"},
	"44": {HeatingDegreeDays: 3050, DesignOutdoorC: -10, AvgOutdoorC: 10.4, Region: "Ruhr"},
	"45": {HeatingDegreeDays: 3050, DesignOutdoorC: -10, AvgOutdoorC: 10.4, Region: "Ruhr"},
	"46": {HeatingDegreeDays: 3050, DesignOutdoorC: -10, AvgOutdoorC: 10.4, Region: "Ruhr"},
	"47": {HeatingDegreeDays: 3000, DesignOutdoorC: -10, AvgOutdoorC: 10.6, Region: "Lower Rhine"},
	"48": {HeatingDegreeDays: 3200, DesignOutdoorC: -10, AvgOutdoorC: 10.0, Region: "Münsterland"},
	"49": {HeatingDegreeDays: 3250, DesignOutdoorC: -10, AvgOutdoorC: 9.8, Region: "Osnabrück"},
	"50": {HeatingDegreeDays: 2950, DesignOutdoorC: -10, AvgOutdoorC: 10.8, Region: "Cologne"},
	"51": {HeatingDegreeDays: 2950, DesignOutdoorC: -10, AvgOutdoorC: 10.8, Region: "Cologne"},
	"52": {HeatingDegreeDays: 3100, DesignOutdoorC: -10, AvgOutdoorC: 10.3, Region: "Aachen"},
	"53": {HeatingDegreeDays: 3000, DesignOutdoorC: -10, AvgOutdoorC: 10.6, Region: "Bonn"},
	"54": {HeatingDegreeDays: 3300, DesignOutdoorC: -10, AvgOutdoorC: 9.9, Region: "Moselle"},
	"55": {HeatingDegreeDays: 2950, DesignOutdoorC: -10, AvgOutdoorC: 10.8, Region: "Rhine-Hesse"},
	"56": {HeatingDegreeDays: 3100, DesignOutdoorC: -10, AvgOutdoorC: 10.4, Region: "Koblenz"},
	"57": {HeatingDegreeDays: 3700, DesignOutdoorC: -12, AvgOutdoorC: 8.6, Region: "Siegerland"},
	"58": {HeatingDegreeDays: 3600, DesignOutdoorC: -12, AvgOutdoorC: 8.8, Region: "Sauerland"},
	"59": {HeatingDegreeDays: 3400, DesignOutdoorC: -12, AvgOutdoorC: 9.5, Region: "Hellweg"},
	"60": {HeatingDegreeDays: 3000, DesignOutdoorC: -12, AvgOutdoorC: 10.7, Region: "Rhine-Main"},
	"61": {HeatingDegreeDays: 3000, DesignOutdoorC: -12, AvgOutdoorC: 10.7, Region: "Rhine-Main"},
	"63": {HeatingDegreeDays: 3050, DesignOutdoorC: -12, AvgOutdoorC: 10.5, Region: "Lower Main"},
	"64": {HeatingDegreeDays: 3000, DesignOutdoorC: -12, AvgOutdoorC: 10.6, Region: "Darmstadt"},
	"65": {HeatingDegreeDays: 3000, DesignOutdoorC: -10, AvgOutdoorC: 10.6, Region: "Wiesbaden"},
	"66": {HeatingDegreeDays: 3200, DesignOutdoorC: -10, AvgOutdoorC: 10.1, Region: "Saarland"},
	"67": {HeatingDegreeDays: 2900, DesignOutdoorC: -10, AvgOutdoorC: 11.0, Region: "Palatinate"},
	"68": {HeatingDegreeDays: 2900, DesignOutdoorC: -12, AvgOutdoorC: 11.0, Region: "Rhine-Neckar"},
	"69": {HeatingDegreeDays: 2950, DesignOutdoorC: -12, AvgOutdoorC: 10.9, Region: "Heidelberg"},
	"70": {HeatingDegreeDays: 3100, DesignOutdoorC: -12, AvgOutdoorC: 10.4, Region: "Stuttgart"},
	"71": {HeatingDegreeDays: 3250, DesignOutdoorC: -12, AvgOutdoorC: 9.9, Region: "Böblingen"},
	"72": {HeatingDegreeDays: 3500, DesignOutdoorC: -14, AvgOutdoorC: 9.1, Region: "Swabian Jura"},
	"73": {HeatingDegreeDays: 3300, DesignOutdoorC: -12, AvgOutdoorC: 9.6, Region: "Fils valley"},
	"74": {HeatingDegreeDays: 3150, DesignOutdoorC: -12, AvgOutdoorC: 10.2, Region: "Heilbronn"},
	"75": {HeatingDegreeDays: 3300, DesignOutdoorC: -12, AvgOutdoorC: 9.7, Region: "Northern Black Forest"},
	"76": {HeatingDegreeDays: 2950, DesignOutdoorC: -12, AvgOutdoorC: 10.9, Region: "Upper Rhine (Karlsruhe)"},
	"77": {HeatingDegreeDays: 3000, DesignOutdoorC: -12, AvgOutdoorC: 10.7, Region: "Ortenau"},
	"78": {HeatingDegreeDays: 3900, DesignOutdoorC: -16, AvgOutdoorC: 7.8, Region: "Black Forest / Baar"},
	"79": {HeatingDegreeDays: 3000, DesignOutdoorC: -12, AvgOutdoorC: 10.8, Region: "Breisgau"},
	"80": {HeatingDegreeDays: 3600, DesignOutdoorC: -16, AvgOutdoorC: 9.1, Region: "Munich"},
	"81": {HeatingDegreeDays: 3600, DesignOutdoorC: -16, AvgOutdoorC: 9.1, Region: "Munich"},
	"82": {HeatingDegreeDays: 3900, DesignOutdoorC: -16, AvgOutdoorC: 8.2, Region: "Alpine foothills"},
	"83": {HeatingDegreeDays: 3950, DesignOutdoorC: -16, AvgOutdoorC: 8.1, Region: "Chiemgau"},
	"84": {HeatingDegreeDays: 3700, DesignOutdoorC: -16, AvgOutdoorC: 8.7, Region: "Lower Bavaria"},
	"85": {HeatingDegreeDays: 3650, DesignOutdoorC: -16, AvgOutdoorC: 8.8, Region: "Ingolstadt"},
	"86": {HeatingDegreeDays: 3650, DesignOutdoorC: -16, AvgOutdoorC: 8.8, Region: "Augsburg"},
	"87": {HeatingDegreeDays: 4000, DesignOutdoorC: -16, AvgOutdoorC: 7.8, Region: "Allgäu"},
	"88": {HeatingDegreeDays: 3500, DesignOutdoorC: -14, AvgOutdoorC: 9.2, Region: "Lake Constance"},
	"89": {HeatingDegreeDays: 3650, DesignOutdoorC: -14, AvgOutdoorC: 8.8, Region: "Ulm"},
	"90": {HeatingDegreeDays: 3450, DesignOutdoorC: -16, AvgOutdoorC: 9.4, Region: "Nuremberg"},
	"91": {HeatingDegreeDays: 3450, DesignOutdoorC: -16, AvgOutdoorC: 9.4, Region: "Middle Franconia"},
	"92": {HeatingDegreeDays: 3800, DesignOutdoorC: -16, AvgOutdoorC: 8.3, Region: "Upper Palatinate"},
	"93": {HeatingDegreeDays: 3650, DesignOutdoorC: -16, AvgOutdoorC: 8.8, Region: "Regensburg"},
	"94": {HeatingDegreeDays: 3900, DesignOutdoorC: -16, AvgOutdoorC: 8.1, Region: "Bavarian Forest"},
	"95": {HeatingDegreeDays: 4100, DesignOutdoorC: -18, AvgOutdoorC: 7.4, Region: "Fichtel Mountains"},
	"96": {HeatingDegreeDays: 3600, DesignOutdoorC: -16, AvgOutdoorC: 8.8, Region: "Upper Franconia"},
	"97": {HeatingDegreeDays: 3300, DesignOutdoorC: -14, AvgOutdoorC: 9.7, Region: "Lower Franconia"},
	"98": {HeatingDegreeDays: 4000, DesignOutdoorC: -16, AvgOutdoorC: 7.6, Region: "Thuringian Forest"},
	"99": {HeatingDegreeDays: 3550, DesignOutdoorC: -14, AvgOutdoorC: 8.8, Region: "Central Thuringia"},
}
