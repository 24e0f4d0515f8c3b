package mssql

import (
	"fmt"

	"github.com/leapstack-labs/queryc/pkg/lower"
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

// hashName maps a digest algorithm to its HASHBYTES name. The SHA-2
// variants are spelled with the family prefix; MD5 and SHA1 pass through.
func hashName(how string) (string, error) {
	switch how {
	case "md5", "sha1":
		return how, nil
	case "sha256":
		return "sha2_256", nil
	case "sha512":
		return "sha2_512", nil
	}
	return "", fmt.Errorf("%w: %q", lower.ErrUnknownAlgorithm, how)
}

func hashCall(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	digest, ok := node.(*ops.Digest)
	if !ok {
		return nil, lower.ShapeError(node, "digest")
	}
	name, err := hashName(digest.How)
	if err != nil {
		return nil, err
	}
	arg, err := t.Translate(digest.Arg)
	if err != nil {
		return nil, err
	}
	return sqlast.Call("hashbytes", &sqlast.Literal{Value: name}, arg), nil
}

func lowerHashBytes(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	return hashCall(t, node)
}

// lowerHexDigest renders the raw digest as a lowercase hex string:
// lower(convert(VARCHAR(MAX), hashbytes(...), 2)). Style 2 is hex without
// the 0x prefix.
func lowerHexDigest(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	hashed, err := hashCall(t, node)
	if err != nil {
		return nil, err
	}
	converted := sqlast.Call("convert",
		&sqlast.Verbatim{SQL: "VARCHAR(MAX)"},
		hashed,
		&sqlast.Literal{Value: int64(2)},
	)
	return sqlast.Call("lower", converted), nil
}
