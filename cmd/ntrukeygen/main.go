// Command ntrukeygen is a sanity driver over the NTRUEncrypt parameter
// catalog: for each entry (or just the one named on the command line) it
// runs key generation, checks the h(1) mod q = 3 identity every valid
// keypair must satisfy, and prints a BLAKE2b fingerprint of the public
// blob alongside the blob lengths.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gtank/blake2/blake2b"

	"ntru-core/ntru/drbg"
	"ntru-core/ntru/keygen"
	"ntru-core/ntru/keys"
	"ntru-core/ntru/params"
)

func usage() {
	fmt.Println(`usage: ntrukeygen [-id <name>] [-v]

Generates an NTRUEncrypt keypair for every parameter set in the catalog
(or a single one, with -id) and reports h(1) mod q, blob lengths, and a
BLAKE2b-256 fingerprint of the public blob.

Flags:
  -id <name>   run only the named parameter set (e.g. ees401ep1)
  -v           print the catalog checksum, and each parameter set's name,
               N, q, product-form flag and security strength before
               generating`)
}

func fingerprint(blob []byte) (string, error) {
	d, err := blake2b.NewDigest(nil, nil, nil, 32)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	if _, err := d.Write(blob); err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return fmt.Sprintf("%x", d.Sum(nil)), nil
}

func runOne(reg *drbg.Registry, rec params.ParamSet, verbose bool) error {
	if verbose {
		log.Printf("%-14s N=%-5d q=%-5d product=%-5t secStrength=%do",
			rec.Name, rec.N, rec.Q, rec.ProductForm, rec.SecStrengthOctets)
	}
	h, err := reg.Instantiate([]byte(rec.Name))
	if err != nil {
		return fmt.Errorf("%s: instantiate: %w", rec.Name, err)
	}
	defer reg.Uninstantiate(h)

	pub, priv, err := keygen.KeyGen(reg, h, rec.ID)
	if err != nil {
		return fmt.Errorf("%s: keygen: %w", rec.Name, err)
	}

	hDense, err := keys.DecodePublic(rec, pub)
	if err != nil {
		return fmt.Errorf("%s: decode public: %w", rec.Name, err)
	}
	var sum uint32
	for _, c := range hDense {
		sum = (sum + uint32(c)) % rec.Q
	}
	ok := sum == 3
	fp, err := fingerprint(pub)
	if err != nil {
		return fmt.Errorf("%s: %w", rec.Name, err)
	}
	fmt.Printf("%-14s pub=%4dB priv=%4dB h(1)=%-4d ok=%-5t fingerprint=%s\n",
		rec.Name, len(pub), len(priv), sum, ok, fp)
	if !ok {
		return fmt.Errorf("%s: h(1) mod q = %d, want 3", rec.Name, sum)
	}
	return nil
}

func main() {
	idFlag := flag.String("id", "", "run only this parameter set's name")
	verbose := flag.Bool("v", false, "print each parameter record before generating")
	flag.Usage = usage
	flag.Parse()

	var targets []params.ParamSet
	all := params.All()
	if *idFlag != "" {
		found := false
		for _, rec := range all {
			if rec.Name == *idFlag {
				targets = append(targets, rec)
				found = true
				break
			}
		}
		if !found {
			log.Fatalf("unknown parameter set %q", *idFlag)
		}
	} else {
		targets = all
	}

	if *verbose {
		log.Printf("catalog checksum: %x", params.Checksum())
	}

	reg := drbg.NewRegistry()
	failed := 0
	for _, rec := range targets {
		if err := runOne(reg, rec, *verbose); err != nil {
			log.Printf("FAIL: %v", err)
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d/%d parameter sets failed\n", failed, len(targets))
		os.Exit(1)
	}
}
