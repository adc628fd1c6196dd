// Command paillier is a small CLI front end over the paillier package:
// key generation, public-key extraction, and the three homomorphic
// operations, all speaking the JSON wire format of spec §6.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/crypto-phe/paillier"
)

var verbose bool

func main() {
	flag.Usage = usage
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.BoolVar(&verbose, "verbose", false, "verbose logging")

	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	if cmd == "-h" || cmd == "--help" {
		usage()
		os.Exit(0)
	}

	args := flag.Args()[1:]
	var err error
	switch cmd {
	case "genpkey":
		err = cmdGenpkey(args)
	case "extract":
		err = cmdExtract(args)
	case "encrypt":
		err = cmdEncrypt(args)
	case "decrypt":
		err = cmdDecrypt(args)
	case "add":
		err = cmdAdd(args)
	case "addenc":
		err = cmdAddEnc(args)
	case "multiply":
		err = cmdMultiply(args)
	default:
		fmt.Fprintf(os.Stderr, "paillier: unknown command %q\n", cmd)
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "paillier: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: paillier <command> [arguments]

commands:
  genpkey [--keysize=N] OUT          generate a keypair, write private JSON
  extract PRIV OUT                   write PRIV's public sub-object
  encrypt PUB VALUE                  encrypt VALUE, write ciphertext JSON
  decrypt PRIV CIPHER                decrypt CIPHER, print the value
  add PUB CIPHER VALUE               ciphertext + plaintext
  addenc PUB CIPHER1 CIPHER2         ciphertext + ciphertext
  multiply PUB CIPHER VALUE          ciphertext * plaintext

global flags:
  -h, --help      show this message
  -v, --verbose   verbose logging`)
}

func logVerbose(format string, args ...interface{}) {
	if verbose {
		log.Printf(format, args...)
	}
}

// writeOutput writes data to outPath, or to stdout if outPath is "" or "-".
func writeOutput(outPath string, data []byte) error {
	data = append(data, '\n')
	if outPath == "" || outPath == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outPath, data, 0600)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return data, nil
}

func cmdGenpkey(args []string) error {
	fs := flag.NewFlagSet("genpkey", flag.ExitOnError)
	keysize := fs.Int("keysize", 2048, "key size in bits")
	message := fs.String("message", "", "kid comment stored alongside the key")
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		*out = fs.Arg(0)
	}

	logVerbose("generating a %d-bit keypair", *keysize)
	sk, err := paillier.Generate(*keysize)
	if err != nil {
		return errors.Wrap(err, "generating key")
	}
	data, err := paillier.MarshalPrivateKeyJSON(sk, *message)
	if err != nil {
		return errors.Wrap(err, "marshaling private key")
	}
	return writeOutput(*out, data)
}

func cmdExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("extract requires PRIV [OUT]")
	}
	if fs.NArg() > 1 {
		*out = fs.Arg(1)
	}

	privData, err := readFile(fs.Arg(0))
	if err != nil {
		return err
	}
	sk, _, err := paillier.UnmarshalPrivateKeyJSON(privData)
	if err != nil {
		return errors.Wrap(err, "parsing private key")
	}
	data, err := paillier.MarshalPublicKeyJSON(&sk.PublicKey, "")
	if err != nil {
		return errors.Wrap(err, "marshaling public key")
	}
	return writeOutput(*out, data)
}

func cmdEncrypt(args []string) error {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return errors.New("encrypt requires PUB VALUE")
	}

	pub, err := loadPublicKey(fs.Arg(0))
	if err != nil {
		return err
	}
	value, err := parseFloat(fs.Arg(1))
	if err != nil {
		return err
	}

	ctx, err := paillier.DefaultContext(pub)
	if err != nil {
		return err
	}
	encoded, err := ctx.EncodeFloat64(value)
	if err != nil {
		return errors.Wrap(err, "encoding value")
	}
	cipher, err := encoded.Encrypt()
	if err != nil {
		return errors.Wrap(err, "encrypting value")
	}
	data, err := cipher.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshaling ciphertext")
	}
	return writeOutput(*out, data)
}

func cmdDecrypt(args []string) error {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return errors.New("decrypt requires PRIV CIPHER")
	}

	privData, err := readFile(fs.Arg(0))
	if err != nil {
		return err
	}
	sk, _, err := paillier.UnmarshalPrivateKeyJSON(privData)
	if err != nil {
		return errors.Wrap(err, "parsing private key")
	}
	ctx, err := paillier.DefaultContext(&sk.PublicKey)
	if err != nil {
		return err
	}
	cipher, err := loadCiphertext(fs.Arg(1), ctx)
	if err != nil {
		return err
	}
	encoded, err := cipher.Decrypt(sk)
	if err != nil {
		return errors.Wrap(err, "decrypting value")
	}
	value, err := encoded.DecodeFloat64()
	if err != nil {
		return errors.Wrap(err, "decoding value")
	}
	return writeOutput(*out, []byte(fmt.Sprintf("%v", value)))
}

func cmdAdd(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 3 {
		return errors.New("add requires PUB CIPHER VALUE")
	}

	pub, err := loadPublicKey(fs.Arg(0))
	if err != nil {
		return err
	}
	ctx, err := paillier.DefaultContext(pub)
	if err != nil {
		return err
	}
	cipher, err := loadCiphertext(fs.Arg(1), ctx)
	if err != nil {
		return err
	}
	value, err := parseFloat(fs.Arg(2))
	if err != nil {
		return err
	}
	encoded, err := ctx.EncodeFloat64(value)
	if err != nil {
		return errors.Wrap(err, "encoding value")
	}
	result, err := cipher.AddEncoded(encoded)
	if err != nil {
		return errors.Wrap(err, "adding")
	}
	data, err := result.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshaling ciphertext")
	}
	return writeOutput(*out, data)
}

func cmdAddEnc(args []string) error {
	fs := flag.NewFlagSet("addenc", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 3 {
		return errors.New("addenc requires PUB CIPHER1 CIPHER2")
	}

	pub, err := loadPublicKey(fs.Arg(0))
	if err != nil {
		return err
	}
	ctx, err := paillier.DefaultContext(pub)
	if err != nil {
		return err
	}
	c1, err := loadCiphertext(fs.Arg(1), ctx)
	if err != nil {
		return err
	}
	c2, err := loadCiphertext(fs.Arg(2), ctx)
	if err != nil {
		return err
	}
	result, err := c1.AddEncrypted(c2)
	if err != nil {
		return errors.Wrap(err, "adding")
	}
	data, err := result.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshaling ciphertext")
	}
	return writeOutput(*out, data)
}

func cmdMultiply(args []string) error {
	fs := flag.NewFlagSet("multiply", flag.ExitOnError)
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 3 {
		return errors.New("multiply requires PUB CIPHER VALUE")
	}

	pub, err := loadPublicKey(fs.Arg(0))
	if err != nil {
		return err
	}
	ctx, err := paillier.DefaultContext(pub)
	if err != nil {
		return err
	}
	cipher, err := loadCiphertext(fs.Arg(1), ctx)
	if err != nil {
		return err
	}
	value, err := parseFloat(fs.Arg(2))
	if err != nil {
		return err
	}
	encoded, err := ctx.EncodeFloat64(value)
	if err != nil {
		return errors.Wrap(err, "encoding value")
	}
	result, err := cipher.MultiplyEncoded(encoded)
	if err != nil {
		return errors.Wrap(err, "multiplying")
	}
	data, err := result.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshaling ciphertext")
	}
	return writeOutput(*out, data)
}

func loadPublicKey(path string) (*paillier.PublicKey, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	pub, _, err := paillier.UnmarshalPublicKeyJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing public key")
	}
	return pub, nil
}

func loadCiphertext(path string, ctx *paillier.EncodingContext) (*paillier.EncryptedNumber, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	cipher, err := paillier.UnmarshalEncryptedNumberJSON(data, ctx)
	if err != nil {
		return nil, errors.Wrap(err, "parsing ciphertext")
	}
	return cipher, nil
}

func parseFloat(s string) (float64, error) {
	var v float64
	if _, err := fmt.Sscanf(s, "%g", &v); err != nil {
		return 0, errors.Wrapf(err, "parsing %q as a number", s)
	}
	return v, nil
}
