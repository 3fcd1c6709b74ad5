package tables

// weightStandards maps gender and whole-inch height to the maximum weight in
// pounds for each weight age bracket.
var weightStandards = map[Gender]map[int]map[WeightAgeBracket]int{
	Male: {
		58: {WeightAge17To20: 131, WeightAge21To27: 136, WeightAge28To39: 139, WeightAge40Plus: 141},
		59: {WeightAge17To20: 136, WeightAge21To27: 141, WeightAge28To39: 144, WeightAge40Plus: 146},
		60: {WeightAge17To20: 141, WeightAge21To27: 146, WeightAge28To39: 149, WeightAge40Plus: 151},
		61: {WeightAge17To20: 146, WeightAge21To27: 151, WeightAge28To39: 154, WeightAge40Plus: 156},
		62: {WeightAge17To20: 150, WeightAge21To27: 156, WeightAge28To39: 159, WeightAge40Plus: 161},
		63: {WeightAge17To20: 155, WeightAge21To27: 161, WeightAge28To39: 164, WeightAge40Plus: 166},
		64: {WeightAge17To20: 160, WeightAge21To27: 166, WeightAge28To39: 169, WeightAge40Plus: 172},
		65: {WeightAge17To20: 165, WeightAge21To27: 171, WeightAge28To39: 175, WeightAge40Plus: 177},
		66: {WeightAge17To20: 170, WeightAge21To27: 176, WeightAge28To39: 180, WeightAge40Plus: 183},
		67: {WeightAge17To20: 175, WeightAge21To27: 181, WeightAge28To39: 185, WeightAge40Plus: 188},
		68: {WeightAge17To20: 181, WeightAge21To27: 187, WeightAge28To39: 191, WeightAge40Plus: 194},
		69: {WeightAge17To20: 186, WeightAge21To27: 193, WeightAge28To39: 197, WeightAge40Plus: 200},
		70: {WeightAge17To20: 191, WeightAge21To27: 199, WeightAge28To39: 203, WeightAge40Plus: 206},
		71: {WeightAge17To20: 197, WeightAge21To27: 205, WeightAge28To39: 209, WeightAge40Plus: 212},
		72: {WeightAge17To20: 202, WeightAge21To27: 210, WeightAge28To39: 215, WeightAge40Plus: 218},
		73: {WeightAge17To20: 208, WeightAge21To27: 216, WeightAge28To39: 221, WeightAge40Plus: 224},
		74: {WeightAge17To20: 214, WeightAge21To27: 222, WeightAge28To39: 227, WeightAge40Plus: 230},
		75: {WeightAge17To20: 220, WeightAge21To27: 228, WeightAge28To39: 233, WeightAge40Plus: 237},
		76: {WeightAge17To20: 226, WeightAge21To27: 235, WeightAge28To39: 240, WeightAge40Plus: 243},
		77: {WeightAge17To20: 232, WeightAge21To27: 241, WeightAge28To39: 246, WeightAge40Plus: 250},
		78: {WeightAge17To20: 238, WeightAge21To27: 247, WeightAge28To39: 253, WeightAge40Plus: 256},
		79: {WeightAge17To20: 244, WeightAge21To27: 254, WeightAge28To39: 259, WeightAge40Plus: 263},
		80: {WeightAge17To20: 250, WeightAge21To27: 260, WeightAge28To39: 266, WeightAge40Plus: 270},
	},
	Female: {
		58: {WeightAge17To20: 120, WeightAge21To27: 124, WeightAge28To39: 126, WeightAge40Plus: 127},
		59: {WeightAge17To20: 124, WeightAge21To27: 128, WeightAge28To39: 130, WeightAge40Plus: 131},
		60: {WeightAge17To20: 128, WeightAge21To27: 132, WeightAge28To39: 134, WeightAge40Plus: 135},
		61: {WeightAge17To20: 132, WeightAge21To27: 136, WeightAge28To39: 139, WeightAge40Plus: 140},
		62: {WeightAge17To20: 136, WeightAge21To27: 141, WeightAge28To39: 143, WeightAge40Plus: 145},
		63: {WeightAge17To20: 141, WeightAge21To27: 145, WeightAge28To39: 148, WeightAge40Plus: 149},
		64: {WeightAge17To20: 145, WeightAge21To27: 150, WeightAge28To39: 152, WeightAge40Plus: 154},
		65: {WeightAge17To20: 150, WeightAge21To27: 155, WeightAge28To39: 157, WeightAge40Plus: 159},
		66: {WeightAge17To20: 155, WeightAge21To27: 160, WeightAge28To39: 163, WeightAge40Plus: 164},
		67: {WeightAge17To20: 159, WeightAge21To27: 165, WeightAge28To39: 168, WeightAge40Plus: 169},
		68: {WeightAge17To20: 164, WeightAge21To27: 170, WeightAge28To39: 173, WeightAge40Plus: 174},
		69: {WeightAge17To20: 169, WeightAge21To27: 175, WeightAge28To39: 178, WeightAge40Plus: 180},
		70: {WeightAge17To20: 174, WeightAge21To27: 180, WeightAge28To39: 183, WeightAge40Plus: 185},
		71: {WeightAge17To20: 179, WeightAge21To27: 185, WeightAge28To39: 189, WeightAge40Plus: 191},
		72: {WeightAge17To20: 184, WeightAge21To27: 191, WeightAge28To39: 194, WeightAge40Plus: 196},
		73: {WeightAge17To20: 189, WeightAge21To27: 196, WeightAge28To39: 200, WeightAge40Plus: 202},
		74: {WeightAge17To20: 194, WeightAge21To27: 202, WeightAge28To39: 205, WeightAge40Plus: 208},
		75: {WeightAge17To20: 200, WeightAge21To27: 207, WeightAge28To39: 211, WeightAge40Plus: 214},
		76: {WeightAge17To20: 205, WeightAge21To27: 213, WeightAge28To39: 217, WeightAge40Plus: 219},
		77: {WeightAge17To20: 210, WeightAge21To27: 219, WeightAge28To39: 223, WeightAge40Plus: 225},
		78: {WeightAge17To20: 216, WeightAge21To27: 225, WeightAge28To39: 229, WeightAge40Plus: 232},
		79: {WeightAge17To20: 221, WeightAge21To27: 230, WeightAge28To39: 235, WeightAge40Plus: 238},
		80: {WeightAge17To20: 227, WeightAge21To27: 236, WeightAge28To39: 241, WeightAge40Plus: 244},
	},
}
