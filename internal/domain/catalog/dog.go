package catalog

// dogTeeth es el mapa dental canino completo (42 piezas), en orden de
// declaración: cuadrante 1 ascendente, luego 2, 3 y 4. La navegación
// next/previous recorre exactamente este orden.
var dogTeeth = []ToothDefinition{
	def("101", 47.8, 14.4, true, 1),
	def("102", 43.9, 14.3, true, 1),
	def("103", 40.1, 14.3, true, 1),
	def("104", 35.7, 14.1, true, 1),
	def("105", 29.9, 14.3, true, 1),
	def("106", 25.8, 14.4, true, 1),
	def("107", 20.4, 14.6, true, 1),
	def("108", 13.8, 14.8, true, 1),
	def("109", 6.6, 13.9, true, 1),
	def("110", 2.4, 14.5, true, 1),
	def("201", 52.9, 14.5, true, 2),
	def("202", 56.7, 14.2, true, 2),
	def("203", 60.6, 14.5, true, 2),
	def("204", 65.1, 14.1, true, 2),
	def("205", 70.5, 14.3, true, 2),
	def("206", 74.9, 14.1, true, 2),
	def("207", 80.3, 14.2, true, 2),
	def("208", 86.4, 14.2, true, 2),
	def("209", 94.0, 14.2, true, 2),
	def("210", 97.7, 14.3, true, 2),
	def("301", 52.2, 91.6, false, 3),
	def("302", 56.3, 91.6, false, 3),
	def("303", 60.1, 91.7, false, 3),
	def("304", 64.0, 91.7, false, 3),
	def("305", 69.0, 91.4, false, 3),
	def("306", 72.7, 91.2, false, 3),
	def("307", 77.3, 91.6, false, 3),
	def("308", 82.6, 92.1, false, 3),
	def("309", 89.3, 91.6, false, 3),
	def("310", 95.0, 91.5, false, 3),
	def("311", 98.7, 91.5, false, 3),
	def("401", 48.3, 91.9, false, 4),
	def("402", 44.2, 91.9, false, 4),
	def("403", 40.5, 92.1, false, 4),
	def("404", 36.4, 91.8, false, 4),
	def("405", 31.4, 91.6, false, 4),
	def("406", 27.8, 91.3, false, 4),
	def("407", 23.1, 91.4, false, 4),
	def("408", 17.9, 91.4, false, 4),
	def("409", 11.6, 91.3, false, 4),
	def("410", 5.3, 91.3, false, 4),
	def("411", 2.0, 91.2, false, 4),
}

// dogNoFurcation: incisivos, caninos, primeros premolares y los
// terceros molares mandibulares (311/411) son unirradiculares, así que
// furcación no aplica.
var dogNoFurcation = idSet(
	"101", "102", "103", "104", "105",
	"201", "202", "203", "204", "205",
	"301", "302", "303", "304", "305", "311",
	"401", "402", "403", "404", "405", "411",
)
