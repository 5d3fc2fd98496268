package wadegiles

// The syllable table is assembled from four sources, folded in order with
// insert-if-absent semantics. Earlier sources win conflicts: the core table
// keeps "chu" -> "zhu", so the umlaut-elided spelling of "chü" is unreachable
// through plain "chu". That loss is intentional; overwriting would convert
// genuine unrelated syllables.

// Standard Wade-Giles syllables. Aspiration is marked with an apostrophe:
// ch' -> ch/q, k' -> k, p' -> p, t' -> t, ts' -> c. Unaspirated forms map to
// zh/j, g, b, d, z.
var coreSyllables = map[string]string{
	// A
	"a":   "a",
	"ai":  "ai",
	"an":  "an",
	"ang": "ang",
	"ao":  "ao",

	// CH (unaspirated)
	"cha":    "zha",
	"chai":   "zhai",
	"chan":   "zhan",
	"chang":  "zhang",
	"chao":   "zhao",
	"che":    "zhe",
	"chen":   "zhen",
	"cheng":  "zheng",
	"chi":    "ji",
	"chia":   "jia",
	"chiang": "jiang",
	"chiao":  "jiao",
	"chieh":  "jie",
	"chien":  "jian",
	"chih":   "zhi",
	"chin":   "jin",
	"ching":  "jing",
	"chiu":   "jiu",
	"chiung": "jiong",
	"cho":    "zhuo",
	"chou":   "zhou",
	"chu":    "zhu",
	"chua":   "zhua",
	"chuai":  "zhuai",
	"chuan":  "zhuan",
	"chuang": "zhuang",
	"chui":   "zhui",
	"chun":   "zhun",
	"chung":  "zhong",
	"chü":    "ju",
	"chüan":  "juan",
	"chüeh":  "jue",
	"chün":   "jun",

	// CH' (aspirated)
	"ch'a":    "cha",
	"ch'ai":   "chai",
	"ch'an":   "chan",
	"ch'ang":  "chang",
	"ch'ao":   "chao",
	"ch'e":    "che",
	"ch'en":   "chen",
	"ch'eng":  "cheng",
	"ch'i":    "qi",
	"ch'ia":   "qia",
	"ch'iang": "qiang",
	"ch'iao":  "qiao",
	"ch'ieh":  "qie",
	"ch'ien":  "qian",
	"ch'ih":   "chi",
	"ch'in":   "qin",
	"ch'ing":  "qing",
	"ch'iu":   "qiu",
	"ch'iung": "qiong",
	"ch'o":    "chuo",
	"ch'ou":   "chou",
	"ch'u":    "chu",
	"ch'uai":  "chuai",
	"ch'uan":  "chuan",
	"ch'uang": "chuang",
	"ch'ui":   "chui",
	"ch'un":   "chun",
	"ch'ung":  "chong",
	"ch'ü":    "qu",
	"ch'üan":  "quan",
	"ch'üeh":  "que",
	"ch'ün":   "qun",

	// E
	"en":  "en",
	"erh": "er",
	"er":  "er",

	// F
	"fa":   "fa",
	"fan":  "fan",
	"fang": "fang",
	"fei":  "fei",
	"fen":  "fen",
	"feng": "feng",
	"fo":   "fo",
	"fou":  "fou",
	"fu":   "fu",

	// H
	"ha":    "ha",
	"hai":   "hai",
	"han":   "han",
	"hang":  "hang",
	"hao":   "hao",
	"hei":   "hei",
	"hen":   "hen",
	"heng":  "heng",
	"ho":    "he",
	"hou":   "hou",
	"hu":    "hu",
	"hua":   "hua",
	"huai":  "huai",
	"huan":  "huan",
	"huang": "huang",
	"hui":   "hui",
	"hun":   "hun",
	"hung":  "hong",
	"huo":   "huo",

	// HS
	"hsi":    "xi",
	"hsia":   "xia",
	"hsiang": "xiang",
	"hsiao":  "xiao",
	"hsieh":  "xie",
	"hsien":  "xian",
	"hsin":   "xin",
	"hsing":  "xing",
	"hsiu":   "xiu",
	"hsiung": "xiong",
	"hsü":    "xu",
	"hsüan":  "xuan",
	"hsüeh":  "xue",
	"hsün":   "xun",

	// I
	"i": "yi",

	// J
	"jan":  "ran",
	"jang": "rang",
	"jao":  "rao",
	"je":   "re",
	"jen":  "ren",
	"jeng": "reng",
	"jih":  "ri",
	"jo":   "ruo",
	"jou":  "rou",
	"ju":   "ru",
	"juan": "ruan",
	"jui":  "rui",
	"jun":  "run",
	"jung": "rong",

	// K (unaspirated)
	"ka":    "ga",
	"kai":   "gai",
	"kan":   "gan",
	"kang":  "gang",
	"kao":   "gao",
	"kei":   "gei",
	"ken":   "gen",
	"keng":  "geng",
	"ko":    "ge",
	"kou":   "gou",
	"ku":    "gu",
	"kua":   "gua",
	"kuai":  "guai",
	"kuan":  "guan",
	"kuang": "guang",
	"kuei":  "gui",
	"kun":   "gun",
	"kung":  "gong",
	"kuo":   "guo",

	// K' (aspirated)
	"k'a":    "ka",
	"k'ai":   "kai",
	"k'an":   "kan",
	"k'ang":  "kang",
	"k'ao":   "kao",
	"k'en":   "ken",
	"k'eng":  "keng",
	"k'o":    "ke",
	"k'ou":   "kou",
	"k'u":    "ku",
	"k'ua":   "kua",
	"k'uai":  "kuai",
	"k'uan":  "kuan",
	"k'uang": "kuang",
	"k'uei":  "kui",
	"k'un":   "kun",
	"k'ung":  "kong",
	"k'uo":   "kuo",

	// L
	"la":    "la",
	"lai":   "lai",
	"lan":   "lan",
	"lang":  "lang",
	"lao":   "lao",
	"le":    "le",
	"lei":   "lei",
	"leng":  "leng",
	"li":    "li",
	"liang": "liang",
	"liao":  "liao",
	"lieh":  "lie",
	"lien":  "lian",
	"lin":   "lin",
	"ling":  "ling",
	"liu":   "liu",
	"lo":    "luo",
	"lou":   "lou",
	"lu":    "lu",
	"luan":  "luan",
	"lun":   "lun",
	"lung":  "long",
	"lü":    "lü",
	"lüan":  "luan",
	"lüeh":  "lue",

	// M
	"ma":   "ma",
	"mai":  "mai",
	"man":  "man",
	"mang": "mang",
	"mao":  "mao",
	"mei":  "mei",
	"men":  "men",
	"meng": "meng",
	"mi":   "mi",
	"miao": "miao",
	"mieh": "mie",
	"mien": "mian",
	"min":  "min",
	"ming": "ming",
	"miu":  "miu",
	"mo":   "mo",
	"mou":  "mou",
	"mu":   "mu",

	// N
	"na":    "na",
	"nai":   "nai",
	"nan":   "nan",
	"nang":  "nang",
	"nao":   "nao",
	"nei":   "nei",
	"nen":   "nen",
	"neng":  "neng",
	"ni":    "ni",
	"niang": "niang",
	"niao":  "niao",
	"nieh":  "nie",
	"nien":  "nian",
	"nin":   "nin",
	"ning":  "ning",
	"niu":   "niu",
	"no":    "nuo",
	"nu":    "nu",
	"nuan":  "nuan",
	"nung":  "nong",
	"nü":    "nü",
	"nüeh":  "nue",

	// O
	"o":  "e",
	"ou": "ou",

	// P (unaspirated)
	"pa":   "ba",
	"pai":  "bai",
	"pan":  "ban",
	"pang": "bang",
	"pao":  "bao",
	"pei":  "bei",
	"pen":  "ben",
	"peng": "beng",
	"pi":   "bi",
	"piao": "biao",
	"pieh": "bie",
	"pien": "bian",
	"pin":  "bin",
	"ping": "bing",
	"po":   "bo",
	"pu":   "bu",

	// P' (aspirated)
	"p'a":   "pa",
	"p'ai":  "pai",
	"p'an":  "pan",
	"p'ang": "pang",
	"p'ao":  "pao",
	"p'ei":  "pei",
	"p'en":  "pen",
	"p'eng": "peng",
	"p'i":   "pi",
	"p'iao": "piao",
	"p'ieh": "pie",
	"p'ien": "pian",
	"p'in":  "pin",
	"p'ing": "ping",
	"p'o":   "po",
	"p'ou":  "pou",
	"p'u":   "pu",

	// S
	"sa":     "sa",
	"sai":    "sai",
	"san":    "san",
	"sang":   "sang",
	"sao":    "sao",
	"se":     "se",
	"sen":    "sen",
	"seng":   "seng",
	"sha":    "sha",
	"shai":   "shai",
	"shan":   "shan",
	"shang":  "shang",
	"shao":   "shao",
	"she":    "she",
	"shen":   "shen",
	"sheng":  "sheng",
	"shih":   "shi",
	"shou":   "shou",
	"shu":    "shu",
	"shua":   "shua",
	"shuai":  "shuai",
	"shuan":  "shuan",
	"shuang": "shuang",
	"shui":   "shui",
	"shun":   "shun",
	"shuo":   "shuo",
	"so":     "suo",
	"sou":    "sou",
	"ssu":    "si",
	"su":     "su",
	"suan":   "suan",
	"sui":    "sui",
	"sun":    "sun",
	"sung":   "song",
	"szu":    "si",

	// T (unaspirated)
	"ta":   "da",
	"tai":  "dai",
	"tan":  "dan",
	"tang": "dang",
	"tao":  "dao",
	"te":   "de",
	"teng": "deng",
	"ti":   "di",
	"tiao": "diao",
	"tieh": "die",
	"tien": "dian",
	"ting": "ding",
	"tiu":  "diu",
	"to":   "duo",
	"tou":  "dou",
	"tu":   "du",
	"tuan": "duan",
	"tui":  "dui",
	"tun":  "dun",
	"tung": "dong",

	// T' (aspirated)
	"t'a":   "ta",
	"t'ai":  "tai",
	"t'an":  "tan",
	"t'ang": "tang",
	"t'ao":  "tao",
	"t'e":   "te",
	"t'eng": "teng",
	"t'i":   "ti",
	"t'iao": "tiao",
	"t'ieh": "tie",
	"t'ien": "tian",
	"t'ing": "ting",
	"t'o":   "tuo",
	"t'ou":  "tou",
	"t'u":   "tu",
	"t'uan": "tuan",
	"t'ui":  "tui",
	"t'un":  "tun",
	"t'ung": "tong",

	// TS (unaspirated)
	"tsa":   "za",
	"tsai":  "zai",
	"tsan":  "zan",
	"tsang": "zang",
	"tsao":  "zao",
	"tse":   "ze",
	"tsei":  "zei",
	"tsen":  "zen",
	"tseng": "zeng",
	"tso":   "zuo",
	"tsou":  "zou",
	"tsu":   "zu",
	"tsuan": "zuan",
	"tsui":  "zui",
	"tsun":  "zun",
	"tsung": "zong",
	"tzu":   "zi",

	// TS' (aspirated)
	"ts'a":   "ca",
	"ts'ai":  "cai",
	"ts'an":  "can",
	"ts'ang": "cang",
	"ts'ao":  "cao",
	"ts'e":   "ce",
	"ts'en":  "cen",
	"ts'eng": "ceng",
	"ts'o":   "cuo",
	"ts'ou":  "cou",
	"ts'u":   "cu",
	"ts'uan": "cuan",
	"ts'ui":  "cui",
	"ts'un":  "cun",
	"ts'ung": "cong",
	"tz'u":   "ci",

	// W
	"wa":   "wa",
	"wai":  "wai",
	"wan":  "wan",
	"wang": "wang",
	"wei":  "wei",
	"wen":  "wen",
	"weng": "weng",
	"wo":   "wo",
	"wu":   "wu",

	// Y
	"ya":   "ya",
	"yai":  "yai",
	"yang": "yang",
	"yao":  "yao",
	"yeh":  "ye",
	"yen":  "yan",
	"yin":  "yin",
	"ying": "ying",
	"yo":   "yo",
	"yu":   "you",
	"yung": "yong",
	"yü":   "yu",
	"yüan": "yuan",
	"yüeh": "yue",
	"yün":  "yun",
}

// Spellings where the umlaut was dropped by the source. "chu" and "lu" are
// listed for completeness but lose to the core table.
var umlautElided = map[string]string{
	"chu":   "ju",
	"hsu":   "xu",
	"hsuan": "xuan",
	"hsueh": "xue",
	"hsun":  "xun",
	"yuan":  "yuan",
	"yueh":  "yue",
	"yun":   "yun",
	"lu":    "lu",
	"lueh":  "lue",
	"nueh":  "nue",
}

// Pre-Pinyin place-name spellings fixed by postal convention, plus the
// Cantonese-influenced "kw" cluster. Not systematic Wade-Giles, but common
// in older texts.
var postalRomanizations = map[string]string{
	// Provinces
	"kwangsi":   "guangxi",
	"kwangtung": "guangdong",
	"fukien":    "fujian",
	"chekiang":  "zhejiang",
	"kiangsi":   "jiangxi",
	"kiangsu":   "jiangsu",
	"shansi":    "shanxi",
	"shensi":    "shaanxi",
	"szechwan":  "sichuan",
	"szechuan":  "sichuan",
	"hopei":     "hebei",
	"hopeh":     "hebei",
	"honan":     "henan",
	"hupei":     "hubei",
	"hupeh":     "hubei",
	"hunan":     "hunan",
	"kansu":     "gansu",
	"kweichow":  "guizhou",
	"yunnan":    "yunnan",
	"anhwei":    "anhui",
	"chihli":    "zhili",
	"fengtien":  "fengtian",
	"manchuria": "manchuria", // not Chinese, kept as is

	// Cities
	"peking":    "beijing",
	"peiping":   "beiping",
	"nanking":   "nanjing",
	"canton":    "guangzhou",
	"tientsin":  "tianjin",
	"tsingtao":  "qingdao",
	"chungking": "chongqing",
	"sian":      "xian",
	"sinkiang":  "xinjiang",
	"tsinghai":  "qinghai",
	"ningsia":   "ningxia",
	"suiyuan":   "suiyuan",

	// Rivers
	"yangtze": "yangzi",
	"yangtse": "yangzi",

	// "kw" cluster
	"kwang": "guang",
	"kwan":  "guan",
	"kwai":  "guai",
	"kwei":  "gui",
}

// OCR and PDF-extraction artifact: a doubled "i" standing in for ü.
var doubledIVariants = map[string]string{
	"ch'ii":   "qu",
	"ch'iian": "quan",
	"ch'iieh": "que",
	"ch'iin":  "qun",

	"chii":   "ju",
	"chiian": "juan",
	"chiieh": "jue",
	"chiin":  "jun",

	"hsii":   "xu",
	"hsiian": "xuan",
	"hsiieh": "xue",
	"hsiin":  "xun",

	"lii":   "lü",
	"liian": "luan",
	"liieh": "lue",

	"nii":   "nü",
	"niieh": "nue",

	"yii":   "yu",
	"yiian": "yuan",
	"yiieh": "yue",
	"yiin":  "yun",
}

// mergeMissing copies entries from src into dst, skipping keys dst already
// has. First writer wins across the whole fold.
func mergeMissing(dst, src map[string]string) {
	for k, v := range src {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
}

// buildTable folds the four source tables into one mapping. The order is the
// precedence order.
func buildTable() map[string]string {
	table := make(map[string]string, len(coreSyllables)+len(umlautElided)+len(postalRomanizations)+len(doubledIVariants))
	for _, src := range []map[string]string{coreSyllables, umlautElided, postalRomanizations, doubledIVariants} {
		mergeMissing(table, src)
	}
	return table
}
