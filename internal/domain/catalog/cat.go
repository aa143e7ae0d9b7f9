package catalog

// catTeeth es el mapa dental felino (30 piezas). Los gatos no tienen
// 105/205, 305/306/310/311 ni 405/406/410/411; los huecos en la
// numeración Triadan son intencionales.
var catTeeth = []ToothDefinition{
	def("101", 47.3, 14.1, true, 1),
	def("102", 43.4, 14.3, true, 1),
	def("103", 39.2, 14.2, true, 1),
	def("104", 34.1, 13.6, true, 1),
	def("106", 26.2, 14.4, true, 1),
	def("107", 22.2, 14.4, true, 1),
	def("108", 15.9, 14.4, true, 1),
	def("109", 9.6, 14.4, true, 1),
	def("201", 52.6, 14.5, true, 2),
	def("202", 56.3, 14.4, true, 2),
	def("203", 60.8, 14.4, true, 2),
	def("204", 66.0, 13.8, true, 2),
	def("206", 73.5, 14.4, true, 2),
	def("207", 77.7, 14.5, true, 2),
	def("208", 84.1, 14.4, true, 2),
	def("209", 90.1, 14.4, true, 2),
	def("301", 51.3, 92.1, false, 3),
	def("302", 55.0, 92.2, false, 3),
	def("303", 59.4, 92.3, false, 3),
	def("304", 65.1, 92.5, false, 3),
	def("307", 75.8, 92.1, false, 3),
	def("308", 81.7, 92.1, false, 3),
	def("309", 88.2, 92.0, false, 3),
	def("401", 47.9, 92.3, false, 4),
	def("402", 44.2, 92.1, false, 4),
	def("403", 40.0, 92.6, false, 4),
	def("404", 35.3, 92.5, false, 4),
	def("407", 24.1, 92.1, false, 4),
	def("408", 17.7, 91.6, false, 4),
	def("409", 11.7, 91.8, false, 4),
}

// catNoFurcation: piezas unirradiculares del gato (incisivos, caninos
// y los premolares/molares de una sola raíz).
var catNoFurcation = idSet(
	"101", "102", "103", "104", "106", "109",
	"201", "202", "203", "204", "206", "209",
	"301", "302", "303", "304",
	"401", "402", "403", "404",
)
