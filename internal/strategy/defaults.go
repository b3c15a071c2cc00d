package strategy

// defaultRows is the built-in conservative basic-strategy matrix used when no
// strategy file is available. Each row is ten action codes in dealer up-card
// order 2,3,4,5,6,7,8,9,T,A.
var defaultRows = map[string]string{
	// Hard totals
	"21": "SSSSSSSSSS",
	"20": "SSSSSSSSSS",
	"19": "SSSSSSSSSS",
	"18": "SSSSSSSSSS",
	"17": "SSSSSSSSSS",
	"16": "SSSSSHHHHH",
	"15": "SSSSSHHHHH",
	"14": "SSSSSHHHHH",
	"13": "SSSSSHHHHH",
	"12": "HHSSSHHHHH",
	"11": "DDDDDDDDDD",
	"10": "DDDDDDDDHH",
	"9":  "HDDDDHHHHH",
	"8":  "HHHHHHHHHH",

	// Soft totals
	"A9": "SSSSSSSSSS",
	"A8": "SSSSSSSSSS",
	"A7": "SDDDDSSHHH",
	"A6": "HDDDDHHHHH",
	"A5": "HHDDDHHHHH",
	"A4": "HHDDDHHHHH",
	"A3": "HHHDDHHHHH",
	"A2": "HHHDDHHHHH",

	// Pairs
	"AA": "PPPPPPPPPP",
	"TT": "SSSSSSSSSS",
	"99": "PPPPPSPPSS",
	"88": "PPPPPPPPPP",
	"77": "PPPPPPHHHH",
	"66": "PPPPPHHHHH",
	"55": "DDDDDDDDHH",
	"44": "HHHPPHHHHH",
	"33": "PPPPPPHHHH",
	"22": "PPPPPPHHHH",
}

// Default returns the built-in conservative strategy table.
func Default() *Table {
	t := NewTable()
	for key, codes := range defaultRows {
		sig, ok := ParseSignature(key)
		if !ok || len(codes) != numUpcards {
			panic("strategy: malformed built-in row " + key)
		}
		for i := 0; i < numUpcards; i++ {
			raw, ok := ParseCode(string(codes[i]))
			if !ok {
				panic("strategy: malformed built-in row " + key)
			}
			t.set(sig, Upcard(i), raw)
		}
	}
	return t
}
