package alphabet

// IDs of the built-in alphabets. These values are part of the persisted genome
// layout and must never be renumbered. IDs below IDUserFirst are reserved.
const (
	IDInvalid ID = iota
	IDDNA
	IDDNAOrN
	IDRNA
	IDRNAOrN
	IDDNAIUPAC
	IDRNAIUPAC
	IDIUPACAminoAcid
	IDFAMSAAminoAcid

	// IDUserFirst is the first ID available to alphabets loaded from
	// definitions.
	IDUserFirst ID = 64
)

// Each complement string lists, position by position, the complement of the
// character above it.
var (
	DNA = MustNew(IDDNA, "dna",
		"ACGT",
		"TGCA")
	DNAOrN = MustNew(IDDNAOrN, "dna-or-n",
		"ACGNT",
		"TGCNA")
	RNA = MustNew(IDRNA, "rna",
		"ACGU",
		"UGCA")
	RNAOrN = MustNew(IDRNAOrN, "rna-or-n",
		"ACGNU",
		"UGCNA")
	DNAIUPAC = MustNew(IDDNAIUPAC, "dna-iupac",
		"ABCDGHKMNRSTVWY",
		"TVGHCDMKNYWABSR")
	RNAIUPAC = MustNew(IDRNAIUPAC, "rna-iupac",
		"ABCDGHKMNRSUVWY",
		"UVGHCDMKNYWABSR")

	// Protein alphabets have no complement.
	IUPACAminoAcid = MustNew(IDIUPACAminoAcid, "iupac-amino-acid", "ARNDCQEGHILKMFPSTWYVX", "")
	FAMSAAminoAcid = MustNew(IDFAMSAAminoAcid, "famsa-amino-acid", "ARNDCQEGHILKMFPSTWYVBZX*", "")
)

var builtin = mustRegistry(DNA, DNAOrN, RNA, RNAOrN, DNAIUPAC, RNAIUPAC, IUPACAminoAcid, FAMSAAminoAcid)

// Builtin returns the registry of built-in alphabets.
func Builtin() *Registry { return builtin }

// Lookup returns the built-in alphabet with the given id.
func Lookup(id ID) (*Alphabet, bool) { return builtin.Lookup(id) }
