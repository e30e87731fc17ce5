package permutation

// mapEntry is one row of the frozen (children, nperms, seed, checksum)
// table. Every field is part of the on-disk format: changing a seed or
// checksum reorders every block physically laid out under that child
// count.
type mapEntry struct {
	children uint64
	nperms   uint64
	seed     uint64
	checksum uint64
}

// MaxChildren is the largest child count with a table entry.
const MaxChildren = 255

// MaxMaps is the number of entries in the frozen table (children 2..255).
const MaxMaps = 254

// frozenTable is reproduced verbatim from the canonical permutation-map
// table; do not reorder, add, or edit entries. The comment after each row
// in the original source records that map's load-imbalance ratio and is
// not reproduced here since it carries no semantic weight.
var frozenTable = [MaxMaps]mapEntry{
	{2, 256, 0xd27b123486e72fe2, 0x000000003848433d},
	{3, 256, 0x625f944e90fc7b1f, 0x00000000a8bfd5c4},
	{4, 256, 0xc9ea9ec82340c885, 0x00000001819d7c69},
	{5, 256, 0xf46733b7f4d47dfd, 0x00000002a1648d74},
	{6, 256, 0x88c3c62d8585b362, 0x00000003d3b0c2c4},
	{7, 256, 0xb60bf1766a5ae0bd, 0x0000000532571d69},
	{8, 256, 0xe98930e3c5d2e90a, 0x00000006edfb0329},
	{9, 256, 0x5a5430036b982ccb, 0x00000008ceaf6934},
	{10, 256, 0x835aa99465b2144e, 0x0000000b5e2e3164},
	{11, 256, 0x74ccebf1dcf3ae80, 0x0000000dd691358c},
	{12, 256, 0x1066c9233dd86924, 0x000000108eb93aaf},
	{13, 256, 0x7481b56debf0e637, 0x0000001424121fe4},
	{14, 256, 0x559b8c44065f8967, 0x00000016ab2ff079},
	{15, 256, 0x34c49545a2ee7f01, 0x0000001a6028efd6},
	{16, 256, 0x4ebc50d1ac2e964f, 0x0000001db337b2bd},
	{17, 256, 0xb25b240b051dcfe0, 0x000000219d7efc4e},
	{18, 256, 0x79606dfe4b053b1f, 0x0000002680164399},
	{19, 256, 0x892e343f2f31d690, 0x00000029eb392835},
	{20, 256, 0x7a98ffad8a39b449, 0x0000002fe8fe2087},
	{21, 256, 0x4b3cbabf9cfb1d0f, 0x00000036363a2408},
	{22, 256, 0xf45c77abb4f035d4, 0x00000038dd0f3e84},
	{23, 256, 0x541b50c5ff1b281b, 0x0000003f6a371b02},
	{24, 256, 0xab0666c148ed3a60, 0x0000004583a52f77},
	{25, 256, 0xd82c5eaad94c5e5b, 0x0000004c40869188},
	{26, 256, 0x3a42dfda4eb880f7, 0x000000522c719bba},
	{27, 256, 0xd200d2fc6b54bf60, 0x0000005760b4fdf5},
	{28, 256, 0xaf07d893ffd1986e, 0x0000005e0dc49ab0},
	{29, 256, 0xc761779e63cd762f, 0x00000067be3cd85c},
	{30, 256, 0xca577b1e07f85ca5, 0x0000006f5517f3e4},
	{31, 256, 0xfd50a593c518b3d4, 0x0000007370e7778f},
	{32, 256, 0x220c7a6cb145fd23, 0x0000007d9d9fa78f},
	{33, 256, 0xeebbb3d6d40970a5, 0x00000083a14e3e60},
	{34, 256, 0xc94fe19955410228, 0x0000008f63355eac},
	{35, 256, 0xb3657369900a545c, 0x00000095a7c566eb},
	{36, 256, 0x1d1fa86e430aed40, 0x0000009cff7669fb},
	{37, 256, 0x41d4567a236661cb, 0x000000a7d66b278b},
	{38, 256, 0x72876b9ff093b21c, 0x000000ae9bc47f33},
	{39, 256, 0xf5a7e1ea513951c2, 0x000000bcb616da83},
	{40, 256, 0x1f86f0f407867aad, 0x000000c30e0445f3},
	{41, 256, 0xc70c00ed99f77eae, 0x000000cd23b394fd},
	{42, 256, 0x47597ce12c6de3f5, 0x000000d7a3ac5add},
	{43, 256, 0x7257467388cb31e6, 0x000000e266068ab0},
	{44, 256, 0xe36feeacae79ea7a, 0x000000eeac6dc5e6},
	{45, 256, 0x57f3441d83fb9eb9, 0x000000f5f65de1b5},
	{46, 256, 0xcb89e7b41fcfede7, 0x000001032761176b},
	{47, 256, 0x1d893b5b937e5aea, 0x00000117017c4b5c},
	{48, 256, 0x2878979d4c91c493, 0x000001183c88612d},
	{49, 256, 0x63f19c2ce78edeee, 0x000001296ed0ee44},
	{50, 256, 0x1e1d40408bc716aa, 0x00000134cff620b1},
	{51, 256, 0x2fcb046eeb1f207b, 0x0000013f67caf09c},
	{52, 256, 0x51d9ee3ca622717f, 0x0000014c447c9d87},
	{53, 256, 0x35e35cb929826075, 0x0000015ba72c76c0},
	{54, 256, 0x3a9ec2b0829222c9, 0x00000168979646be},
	{55, 256, 0xd955efca98a311df, 0x000001789b9cce52},
	{56, 256, 0x445d2f84ade3469f, 0x0000018564732e7d},
	{57, 256, 0x26b57da7b1e97273, 0x0000019531d42382},
	{58, 256, 0xdf7a90179e22dd3f, 0x0000019e491ef47f},
	{59, 256, 0xe032972b59b70972, 0x000001acac08341f},
	{60, 256, 0xb343e4cd3d287ddc, 0x000001bb444b5e46},
	{61, 256, 0xd8d4e54c3df7e3a7, 0x000001c58fcda563},
	{62, 256, 0x44334cc530fb29ba, 0x000001dc18d75844},
	{63, 256, 0x65ad35d57c47f507, 0x000001ecae361bba},
	{64, 256, 0x2a3825f8c282e99f, 0x000001f84a07afec},
	{65, 256, 0x834c9d0d3597a504, 0x0000020bfd6d436c},
	{66, 256, 0x1d9e7b06f6c07a10, 0x0000021ea362bb87},
	{67, 256, 0x6cc1b2e96739fa55, 0x000002265cdb7cce},
	{68, 256, 0xcfe89dfa4292bc17, 0x00000233104ac39b},
	{69, 256, 0x438becb1fd00d4c2, 0x000002505926acb4},
	{70, 256, 0xf5b7e58a298b866c, 0x0000025bbc74fbed},
	{71, 256, 0x0f43ba704002fc93, 0x000002736934b7f3},
	{72, 256, 0xf21c038144492c6f, 0x0000027ccabc9669},
	{73, 256, 0xe3ab5428b9f7df94, 0x00000292e4ee9451},
	{74, 256, 0x2b81da6ec6a9963d, 0x000002a3e4435d6c},
	{75, 256, 0xf40420342b450c83, 0x000002c30448b817},
	{76, 256, 0x7ce590e7e8817733, 0x000002cdfca4e1d9},
	{77, 256, 0x663670846e05bb4b, 0x000002dfec572132},
	{78, 256, 0xa19572c41899d080, 0x000002ed12dd46a0},
	{79, 256, 0x5e07613ecf057f41, 0x0000030aed6e6447},
	{80, 256, 0xf4595de38313a5d3, 0x000003159f7397a1},
	{81, 256, 0xc54089d7d084125a, 0x0000033234b59ff5},
	{82, 256, 0xf908340da38c477b, 0x00000339d35d1583},
	{83, 256, 0xcfcded7072046406, 0x000003504c96061c},
	{84, 256, 0x2af7e558a7e0f844, 0x000003705d412574},
	{85, 256, 0x37eb43e6bf49f751, 0x0000037f68370ad3},
	{86, 256, 0x99de847b1bb599b0, 0x0000039721fa3c62},
	{87, 256, 0x23688c8037026ffd, 0x000003af9d3e8d8f},
	{88, 256, 0x3eb1120addbc60c1, 0x000003c441d3ee37},
	{89, 256, 0x7e9a8a06b63f9603, 0x000003d7ab303470},
	{90, 256, 0xd6f6f1850d1119c6, 0x000003e87888f4d2},
	{91, 256, 0x16946b638e95845b, 0x000004091e6b0f69},
	{92, 256, 0x2bc491717f9cd131, 0x0000042146e172aa},
	{93, 256, 0x054affaef1562f3b, 0x0000042f674b14cc},
	{94, 256, 0x54375dde674a6684, 0x0000044c0df12ea6},
	{95, 256, 0xa052855253694818, 0x000004664c08a41f},
	{96, 256, 0xfc0849afa9f3604a, 0x00000479b7cefede},
	{97, 256, 0x2908de4f98003934, 0x0000048c02c0806e},
	{98, 256, 0xf8be7e271d7e53b5, 0x0000049e9e828659},
	{99, 256, 0x1b9435fdab22a5dd, 0x000004c6070139f9},
	{100, 256, 0x2a17c2b63f3943e1, 0x000004da13183b24},
	{101, 256, 0x8ae2ee0facdb9938, 0x000004ec59eb8413},
	{102, 256, 0x583c2f6cded9d3a9, 0x0000050d25afb497},
	{103, 256, 0x93a173e7214e3dfa, 0x0000051ad37854d9},
	{104, 256, 0x78af3e86fccdbc29, 0x0000053f32a84d94},
	{105, 256, 0x03367c2f007f7dac, 0x00000552d02bff16},
	{106, 256, 0x6fbce373324789ec, 0x00000577c4e9b8ee},
	{107, 256, 0x93e4e36a6e6e1902, 0x0000058f22ad9b3d},
	{108, 256, 0xbad08bd583345655, 0x000005a22c650669},
	{109, 256, 0xc3e137ae1dbe8f41, 0x000005d1e236f82c},
	{110, 256, 0x0f55a3fe5723ea92, 0x000005d7e3592444},
	{111, 256, 0xa55f7f8bdf9a66cf, 0x000005f1c8b42e4e},
	{112, 256, 0xa42b5f8c23f7a65c, 0x00000614209d4444},
	{113, 256, 0xe04327a36da3c095, 0x000006409793dc82},
	{114, 256, 0x5e1c0cafcaff22c5, 0x0000063cb330ca51},
	{115, 256, 0x947eeebeaa418c7b, 0x0000067de838040c},
	{116, 256, 0x827a7e53c45fd591, 0x00000691654028c2},
	{117, 256, 0xee6c6422508b8081, 0x000006c73cd1f5ca},
	{118, 256, 0x8d10f85f77136c9b, 0x000006b780c28a86},
	{119, 256, 0x3ac37b68ece309f7, 0x000006dc2a3372d5},
	{120, 256, 0xfac222ae91b52d75, 0x000006fa4da340cd},
	{121, 256, 0x63f33b583c0f2798, 0x0000071d247c5f54},
	{122, 256, 0x615c622935825616, 0x000007430c7176b3},
	{123, 256, 0xc69189d76872af9a, 0x0000075925c749d5},
	{124, 256, 0xf4050a2ff3986a42, 0x000007760b16d276},
	{125, 256, 0xcff6bf9171a277cb, 0x000007abf7457004},
	{126, 256, 0xa13c261de2a975d7, 0x000007b4edf43211},
	{127, 256, 0xc5f4031a6cec6b01, 0x000007deec966f87},
	{128, 256, 0x698d21f61befa7d4, 0x000007e95cbcb124},
	{129, 256, 0x2be63bbe59df8854, 0x0000081eba81b449},
	{130, 256, 0x2180fdc70ba19fbe, 0x00000840a86f275a},
	{131, 256, 0x3c7b47190d7bca47, 0x0000085843c4ec0f},
	{132, 256, 0xd06a2656c2b16a2d, 0x00000878dce5cdd6},
	{133, 256, 0x89dc1fb8baa12726, 0x00000894d45cfe9f},
	{134, 256, 0x6615e50866192f13, 0x000008b110406a7d},
	{135, 256, 0xa609c9f54b9dbf7f, 0x000008f64bbfa0cd},
	{136, 256, 0x8fb485f7b8431419, 0x000008fc79ddf5ad},
	{137, 256, 0x40988bde38cfae15, 0x0000090e944fe9a3},
	{138, 256, 0x76f1fb825f1b5f3b, 0x000009393a6b2604},
	{139, 256, 0xb1768315ba1ef1c1, 0x00000977ee6bb60b},
	{140, 256, 0x947aebd113c16275, 0x000009995197900c},
	{141, 256, 0xebd7e73fcbfbd250, 0x000009941f7d6a10},
	{142, 256, 0xc7c62d687efa04ba, 0x000009f1e7320726},
	{143, 256, 0x2b97bc1ac9bfc727, 0x000009dda86e488a},
	{144, 256, 0x71a4c7a0d1b93bca, 0x00000a0ff5c6206a},
	{145, 256, 0x3db0fd9a2889f2d3, 0x00000a3d5f8029a0},
	{146, 256, 0x5e16a0936e6ebb4f, 0x00000a61cfc44f33},
	{147, 256, 0x48d86513d51d5ab3, 0x00000a7a917df789},
	{148, 256, 0x0e2707c29c7c80f7, 0x00000ab8b21b090f},
	{149, 256, 0xeef6b90b2873078e, 0x00000ad819b5f793},
	{150, 256, 0x5c74901930f42aa5, 0x00000b04bc34b61c},
	{151, 256, 0x6780b9b7ef3d1571, 0x00000b13f0ac119c},
	{152, 256, 0x5f9f45931955b101, 0x00000b3752cb069a},
	{153, 256, 0x3988cd9403516c78, 0x00000b672b9f93c8},
	{154, 256, 0x6e3215639bb8405c, 0x00000b9567de82c9},
	{155, 256, 0x45056fbc5e5f8730, 0x00000bc2ba15e24d},
	{156, 256, 0x46049b760054472d, 0x00000bcdec26b3c9},
	{157, 256, 0xbef6de70a79f0a75, 0x00000c2bd37f93e7},
	{158, 256, 0xb3c5c3db7c9794d0, 0x00000c3e23f9ed4e},
	{159, 256, 0x352d2822beba6d5c, 0x00000c610d231c88},
	{160, 256, 0xf30ee19ddd4afa2e, 0x00000c6a6b246e6d},
	{161, 256, 0xce68dd4ab2dcd278, 0x00000caeba617e2d},
	{162, 256, 0x613c9e78805e41cb, 0x00000cbc2b0c61c2},
	{163, 256, 0xeeab63f6eaebae4d, 0x00000cfcb0895d26},
	{164, 256, 0x8bb8428ee5865272, 0x00000d2f9a8768a3},
	{165, 256, 0xfe06cfee48df11fa, 0x00000d5f4bc2b0e3},
	{166, 256, 0xcfd6e29926b59b14, 0x00000d6393bc05ee},
	{167, 256, 0x4ffb773628a1e28d, 0x00000da911be9d37},
	{168, 256, 0x54505b3532af3810, 0x00000db8492201d0},
	{169, 256, 0x81cabcc02e8336f1, 0x00000e0420e97916},
	{170, 256, 0x7303ecfd5788a7b0, 0x00000e0934cfca6f},
	{171, 256, 0xd6d187fcca63bc41, 0x00000e526875d3ed},
	{172, 256, 0x12b3d6b7cf93198e, 0x00000e5cc7e5dfb3},
	{173, 256, 0x68b87e58537cb3ed, 0x00000e9322810a09},
	{174, 256, 0xe592972360b1f188, 0x00000ec9c33a5ed1},
	{175, 256, 0x42226d7740fd95d5, 0x00000ede204b3329},
	{176, 256, 0x85e79ec390f0c4ce, 0x00000f1174074484},
	{177, 256, 0xfa0f8f8c35fcc819, 0x00000f3f1ad39a3e},
	{178, 256, 0x990fc6d5576461c7, 0x00000f87974caba0},
	{179, 256, 0x356eb43b1804de5f, 0x00000f9f2474d35e},
	{180, 256, 0x38aa9000d7aae573, 0x00000fd5b6addd06},
	{181, 256, 0x0b1763e2e5eebd1d, 0x00000ffb76ce2b66},
	{182, 256, 0xaed65bed47dedd57, 0x0000101ac344590c},
	{183, 256, 0x77e4fbca8c7fd444, 0x0000105d9c2a52c7},
	{184, 256, 0x9bcd3c6860f00181, 0x00001097462ff6f1},
	{185, 256, 0x5b7f5b92a8f38b96, 0x00001097827236eb},
	{186, 256, 0x4ec22016d2d85110, 0x000010f77854adf5},
	{187, 256, 0x8d4cfc15d3f88d91, 0x000010f75120b900},
	{188, 256, 0x52f131b1250220e8, 0x00001158dfe4a41c},
	{189, 256, 0xfa5dc1ee85fdebd7, 0x00001149e3d8e4af},
	{190, 256, 0xcc6e84d8c990a8a9, 0x00001198c52212c5},
	{191, 256, 0xaece605d95d3a751, 0x000011bced5821f2},
	{192, 256, 0x936556ede86f0b85, 0x000011fb9c0b240f},
	{193, 256, 0x22d3eb1a6eca886f, 0x00001231dbd85c54},
	{194, 256, 0x0d64a83435ee5147, 0x0000126ae7594a62},
	{195, 256, 0x603fc435f11781d7, 0x0000129d389a1f8b},
	{196, 256, 0x5d25211ece491c0c, 0x000012c86c7bdc51},
	{197, 256, 0x316ae4dd498cdb99, 0x0000130c14089adf},
	{198, 256, 0x0689348fe03cffe5, 0x0000130705e0bac0},
	{199, 256, 0xb547ad5221c59950, 0x0000135046838094},
	{200, 256, 0x0d7c80c5dda4b4cb, 0x000013a3e7132632},
	{201, 256, 0x05d55e7d70bad126, 0x000013bff4c42026},
	{202, 256, 0x5b6b3399dbd2bcbd, 0x000013f7b202914b},
	{203, 256, 0xdf46f56c41ea861d, 0x0000142091c0ba26},
	{204, 256, 0x6ab8a044718a698b, 0x00001469b02bb128},
	{205, 256, 0xfb2b742d05f54096, 0x0000146789357a4b},
	{206, 256, 0x5879587e83e5dfcb, 0x000014c437258b0d},
	{207, 256, 0x61b65616dd4d9288, 0x000014d43b401a1e},
	{208, 256, 0x8c3722ddabd63083, 0x0000150ec78643b7},
	{209, 256, 0x75a0df47f4d66fd8, 0x00001539a49cd0dc},
	{210, 256, 0x4160fa0f875155e9, 0x00001570785bcbe9},
	{211, 256, 0xabe7e685cbc9ce5c, 0x0000159de43925eb},
	{212, 256, 0x8689a65aaa3c99c0, 0x000015fc66ccb6b9},
	{213, 256, 0xa802e731e8320896, 0x00001621628872f5},
	{214, 256, 0x9c2c6beb7a7b25bb, 0x00001655fe9367fa},
	{215, 256, 0x6c2bff4eecf7e523, 0x000016a67633f2dd},
	{216, 256, 0x633da96e9ccb7220, 0x000016c1857ad660},
	{217, 256, 0xed34dcf8d4fdc37d, 0x0000171ae5c143cb},
	{218, 256, 0xce9e0e8470219fb9, 0x0000175c46f535dc},
	{219, 256, 0x48e419f13839522f, 0x000017511618b253},
	{220, 256, 0xe83ce578a61a3e92, 0x0000178efe345d42},
	{221, 256, 0x792501128b8e7562, 0x000017f6395d7838},
	{222, 256, 0x3d3b033300746ffd, 0x000017f9dede6cf7},
	{223, 256, 0xaa42b54bd79b9b39, 0x00001835031bc4e1},
	{224, 256, 0xbe8d8bfee659c4ff, 0x0000186ecee4caec},
	{225, 256, 0x0e4fd33344959bf5, 0x0000188b770105b1},
	{226, 256, 0xa6318818535bd977, 0x000018bf36dba228},
	{227, 256, 0x09a58d6ef4cd24a4, 0x00001946e00c3d0e},
	{228, 256, 0xd5df92c1210a61e1, 0x00001955f284187d},
	{229, 256, 0x2f9dad47ecbfb07f, 0x000019b445a00aa2},
	{230, 256, 0x50d1653470eb8009, 0x000019e275ecc423},
	{231, 256, 0x859b561d9909f1f5, 0x00001a0985e6b6e6},
	{232, 256, 0x6e4495e95ba570a6, 0x00001a4c9ec980c5},
	{233, 256, 0x104a5ae2c742cd87, 0x00001a9a1f4de4f7},
	{234, 256, 0xbf6e8f617885bb29, 0x00001adc9d0df84d},
	{235, 256, 0xba9db9112d231b48, 0x00001b05370c313e},
	{236, 256, 0xcc430d194996378a, 0x00001b5f09eb6ae4},
	{237, 256, 0x8a37e532dcb37264, 0x00001ba88015fa57},
	{238, 256, 0x137fc0b403b6691f, 0x00001bc98a59844c},
	{239, 256, 0x4b52fd61f556ebf1, 0x00001bb4446eae57},
	{240, 256, 0xe151761a61bed245, 0x00001bfc708585e4},
	{241, 256, 0x18ad79678dcc175b, 0x00001c497759b280},
	{242, 256, 0x70d604fcd9499c33, 0x00001ca489da0135},
	{243, 256, 0x584678bd5bec7e6b, 0x00001cce5fb12f23},
	{244, 256, 0x3df107aa54b635b3, 0x00001d013be32dd7},
	{245, 256, 0xcc8377b324aa1922, 0x00001d33f9a376d2},
	{246, 256, 0xc189e45cb4aca673, 0x00001d609af1a280},
	{247, 256, 0xa2bf7a007477f3c5, 0x00001d9fefa22ca8},
	{248, 256, 0x8a9e55e3586eb6ab, 0x00001de182ca01ce},
	{249, 256, 0x6d6feba1dcae9397, 0x00001e37f9906fc5},
	{250, 256, 0x889f6848d4489d14, 0x00001ea6fc12e456},
	{251, 256, 0x2126c3b4ee836dde, 0x00001ea151a0e96e},
	{252, 256, 0xceec65ee5be40279, 0x00001f08192ed5c1},
	{253, 256, 0x6d69532520419418, 0x00001f3c8e9b0b72},
	{254, 256, 0x8c93161db4f0fd85, 0x00001f79c5d08c45},
	{255, 256, 0xacd9a3be765cb85d, 0x00001fc35c2b6a2b},
}
