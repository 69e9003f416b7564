package mnemonic

// BIP-39 reference vectors (English list, passphrase "TREZOR").
var trezorVectors = []struct {
	entropy string
	phrase  string
	seed    string
	xprv    string
}{
	{
		entropy: "00000000000000000000000000000000",
		phrase:  "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		seed:    "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		xprv:    "xprv9s21ZrQH143K3h3fDYiay8mocZ3afhfULfb5GX8kCBdno77K4HiA15Tg23wpbeF1pLfs1c5SPmYHrEpTuuRhxMwvKDwqdKiGJS9XFKzUsAF",
	},
	{
		entropy: "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		phrase:  "legal winner thank year wave sausage worth useful legal winner thank yellow",
		seed:    "2e8905819b8723fe2c1d161860e5ee1830318dbf49a83bd451cfb8440c28bd6fa457fe1296106559a3c80937a1c1069be3a3a5bd381ee6260e8d9739fce1f607",
		xprv:    "xprv9s21ZrQH143K2gA81bYFHqU68xz1cX2APaSq5tt6MFSLeXnCKV1RVUJt9FWNTbrrryem4ZckN8k4Ls1H6nwdvDTvnV7zEXs2HgPezuVccsq",
	},
	{
		entropy: "80808080808080808080808080808080",
		phrase:  "letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
		seed:    "d71de856f81a8acc65e6fc851a38d4d7ec216fd0796d0a6827a3ad6ed5511a30fa280f12eb2e47ed2ac03b5c462a0358d18d69fe4f985ec81778c1b370b652a8",
	},
	{
		entropy: "ffffffffffffffffffffffffffffffff",
		phrase:  "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
		seed:    "ac27495480225222079d7be181583751e86f571027b0497b5b5d11218e0a8a13332572917f0f8e5a589620c6f15b11c61dee327651a14c34e18231052e48c069",
	},
	{
		entropy: "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		phrase:  "legal winner thank year wave sausage worth useful legal winner thank year wave sausage wise",
		seed:    "f938c2f3ebd11f1c9057b713d977b5260e4282a57811ab163a9708c4ce15307983ac24c4451c7cb353b2002d0a1ee8a404fa59f0f6aa8323fa9bb61248cf4808",
	},
	{
		entropy: "000000000000000000000000000000000000000000000000",
		phrase:  "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon agent",
		seed:    "035895f2f481b1b0f01fcf8c289c794660b289981a78f8106447707fdd9666ca06da5a9a565181599b79f53b844d8a71dd9f439c52a3d7b3e8a79c906ac845fa",
	},
	{
		entropy: "0000000000000000000000000000000000000000000000000000000000000000",
		phrase:  "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
		seed:    "bda85446c68413707090a52022edd26a1c9462295029f2e60cd7c4f2bbd3097170af7a4d73245cafa9c3cca8d561a7c3de6f5d4a10be8ed2a5e608d68f92fcc8",
		xprv:    "xprv9s21ZrQH143K32qBagUJAMU2LsHg3ka7jqMcV98Y7gVeVyNStwYS3U7yVVoDZ4btbRNf4h6ibWpY22iRmXq35qgLs79f312g2kj5539ebPM",
	},
	{
		entropy: "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		phrase:  "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo vote",
		seed:    "dd48c104698c30cfe2b6142103248622fb7bb0ff692eebb00089b32d22484e1613912f0a5b694407be899ffd31ed3992c456cdf60f5d4564b8ba3f05a69890ad",
	},
	{
		entropy: "9e885d952ad362caeb4efe34a8e91bd2",
		phrase:  "ozone drill grab fiber curtain grace pudding thank cruise elder eight picnic",
		seed:    "274ddc525802f7c828d8ef7ddbcdc5304e87ac3535913611fbbfa986d0c9e5476c91689f9c8a54fd55bd38606aa6a8595ad213d4c9c9f9aca3fb217069a41028",
	},
	{
		entropy: "0c1e24e5917779d297e14d45f14e1a1a",
		phrase:  "army van defense carry jealous true garbage claim echo media make crunch",
		seed:    "3338a6d2ee71c7f28eb5b882159634cd46a898463e9d2d0980f8e80dfbba5b0fa0291e5fb888a599b44b93187be6ee3ab5fd3ead7dd646341b2cdb8d08d13bf7",
	},
}

const zeroPhrase12 = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
