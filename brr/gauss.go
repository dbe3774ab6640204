package brr

// GaussTable holds the 512 unsigned 12 bit weights of the DSP's 4 tap
// Gaussian interpolator. The peak sits at entry 255; the upper half mirrors
// the lower so the 0xFF-x / 0x1FF-x / 0x100+x / x index scheme reads
// symmetric tap pairs.
var GaussTable = [512]uint16{
	0x000, 0x000, 0x000, 0x001, 0x001, 0x001, 0x002, 0x003,
	0x004, 0x004, 0x005, 0x006, 0x008, 0x009, 0x00A, 0x00C,
	0x00D, 0x00F, 0x011, 0x013, 0x015, 0x017, 0x019, 0x01B,
	0x01D, 0x020, 0x022, 0x025, 0x028, 0x02A, 0x02D, 0x030,
	0x033, 0x036, 0x03A, 0x03D, 0x040, 0x044, 0x047, 0x04B,
	0x04F, 0x053, 0x057, 0x05B, 0x05F, 0x063, 0x067, 0x06C,
	0x070, 0x075, 0x079, 0x07E, 0x083, 0x088, 0x08D, 0x092,
	0x097, 0x09C, 0x0A1, 0x0A6, 0x0AC, 0x0B1, 0x0B7, 0x0BC,
	0x0C2, 0x0C8, 0x0CD, 0x0D3, 0x0D9, 0x0DF, 0x0E5, 0x0EB,
	0x0F2, 0x0F8, 0x0FE, 0x105, 0x10B, 0x112, 0x118, 0x11F,
	0x125, 0x12C, 0x133, 0x13A, 0x140, 0x147, 0x14E, 0x155,
	0x15C, 0x164, 0x16B, 0x172, 0x179, 0x180, 0x188, 0x18F,
	0x197, 0x19E, 0x1A5, 0x1AD, 0x1B4, 0x1BC, 0x1C4, 0x1CB,
	0x1D3, 0x1DB, 0x1E2, 0x1EA, 0x1F2, 0x1FA, 0x201, 0x209,
	0x211, 0x219, 0x221, 0x229, 0x231, 0x239, 0x241, 0x249,
	0x251, 0x259, 0x260, 0x268, 0x270, 0x278, 0x280, 0x288,
	0x291, 0x299, 0x2A1, 0x2A9, 0x2B1, 0x2B9, 0x2C0, 0x2C8,
	0x2D0, 0x2D8, 0x2E0, 0x2E8, 0x2F0, 0x2F8, 0x300, 0x308,
	0x310, 0x318, 0x31F, 0x327, 0x32F, 0x337, 0x33E, 0x346,
	0x34E, 0x355, 0x35D, 0x365, 0x36C, 0x374, 0x37B, 0x382,
	0x38A, 0x391, 0x399, 0x3A0, 0x3A7, 0x3AE, 0x3B5, 0x3BD,
	0x3C4, 0x3CB, 0x3D2, 0x3D9, 0x3DF, 0x3E6, 0x3ED, 0x3F4,
	0x3FA, 0x401, 0x407, 0x40E, 0x414, 0x41B, 0x421, 0x427,
	0x42E, 0x434, 0x43A, 0x440, 0x446, 0x44C, 0x451, 0x457,
	0x45D, 0x462, 0x468, 0x46D, 0x473, 0x478, 0x47D, 0x482,
	0x487, 0x48C, 0x491, 0x496, 0x49B, 0x4A0, 0x4A4, 0x4A9,
	0x4AD, 0x4B2, 0x4B6, 0x4BA, 0x4BE, 0x4C2, 0x4C6, 0x4CA,
	0x4CE, 0x4D2, 0x4D5, 0x4D9, 0x4DC, 0x4DF, 0x4E3, 0x4E6,
	0x4E9, 0x4EC, 0x4EF, 0x4F1, 0x4F4, 0x4F7, 0x4F9, 0x4FC,
	0x4FE, 0x500, 0x502, 0x504, 0x506, 0x508, 0x50A, 0x50C,
	0x50D, 0x50F, 0x510, 0x511, 0x513, 0x514, 0x515, 0x515,
	0x516, 0x517, 0x518, 0x518, 0x518, 0x519, 0x519, 0x519,
	0x519, 0x519, 0x519, 0x518, 0x518, 0x518, 0x517, 0x516,
	0x515, 0x515, 0x514, 0x513, 0x511, 0x510, 0x50F, 0x50D,
	0x50C, 0x50A, 0x508, 0x506, 0x504, 0x502, 0x500, 0x4FE,
	0x4FC, 0x4F9, 0x4F7, 0x4F4, 0x4F1, 0x4EF, 0x4EC, 0x4E9,
	0x4E6, 0x4E3, 0x4DF, 0x4DC, 0x4D9, 0x4D5, 0x4D2, 0x4CE,
	0x4CA, 0x4C6, 0x4C2, 0x4BE, 0x4BA, 0x4B6, 0x4B2, 0x4AD,
	0x4A9, 0x4A4, 0x4A0, 0x49B, 0x496, 0x491, 0x48C, 0x487,
	0x482, 0x47D, 0x478, 0x473, 0x46D, 0x468, 0x462, 0x45D,
	0x457, 0x451, 0x44C, 0x446, 0x440, 0x43A, 0x434, 0x42E,
	0x427, 0x421, 0x41B, 0x414, 0x40E, 0x407, 0x401, 0x3FA,
	0x3F4, 0x3ED, 0x3E6, 0x3DF, 0x3D9, 0x3D2, 0x3CB, 0x3C4,
	0x3BD, 0x3B5, 0x3AE, 0x3A7, 0x3A0, 0x399, 0x391, 0x38A,
	0x382, 0x37B, 0x374, 0x36C, 0x365, 0x35D, 0x355, 0x34E,
	0x346, 0x33E, 0x337, 0x32F, 0x327, 0x31F, 0x318, 0x310,
	0x308, 0x300, 0x2F8, 0x2F0, 0x2E8, 0x2E0, 0x2D8, 0x2D0,
	0x2C8, 0x2C0, 0x2B9, 0x2B1, 0x2A9, 0x2A1, 0x299, 0x291,
	0x288, 0x280, 0x278, 0x270, 0x268, 0x260, 0x259, 0x251,
	0x249, 0x241, 0x239, 0x231, 0x229, 0x221, 0x219, 0x211,
	0x209, 0x201, 0x1FA, 0x1F2, 0x1EA, 0x1E2, 0x1DB, 0x1D3,
	0x1CB, 0x1C4, 0x1BC, 0x1B4, 0x1AD, 0x1A5, 0x19E, 0x197,
	0x18F, 0x188, 0x180, 0x179, 0x172, 0x16B, 0x164, 0x15C,
	0x155, 0x14E, 0x147, 0x140, 0x13A, 0x133, 0x12C, 0x125,
	0x11F, 0x118, 0x112, 0x10B, 0x105, 0x0FE, 0x0F8, 0x0F2,
	0x0EB, 0x0E5, 0x0DF, 0x0D9, 0x0D3, 0x0CD, 0x0C8, 0x0C2,
	0x0BC, 0x0B7, 0x0B1, 0x0AC, 0x0A6, 0x0A1, 0x09C, 0x097,
	0x092, 0x08D, 0x088, 0x083, 0x07E, 0x079, 0x075, 0x070,
	0x06C, 0x067, 0x063, 0x05F, 0x05B, 0x057, 0x053, 0x04F,
	0x04B, 0x047, 0x044, 0x040, 0x03D, 0x03A, 0x036, 0x033,
	0x030, 0x02D, 0x02A, 0x028, 0x025, 0x022, 0x020, 0x01D,
	0x01B, 0x019, 0x017, 0x015, 0x013, 0x011, 0x00F, 0x00D,
	0x00C, 0x00A, 0x009, 0x008, 0x006, 0x005, 0x004, 0x004,
	0x003, 0x002, 0x001, 0x001, 0x001, 0x000, 0x000, 0x000,}
