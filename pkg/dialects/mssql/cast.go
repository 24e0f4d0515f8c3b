package mssql

import (
	"fmt"

	"github.com/leapstack-labs/queryc/pkg/datatypes"
	"github.com/leapstack-labs/queryc/pkg/lower"
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

// lowerCast renders CAST(expr AS <tsql type>) using the T-SQL spelling of
// the target type.
func lowerCast(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	cast, ok := node.(*ops.Cast)
	if !ok {
		return nil, lower.ShapeError(node, "cast")
	}
	arg, err := t.Translate(cast.Arg)
	if err != nil {
		return nil, err
	}
	name, err := typeName(cast.To)
	if err != nil {
		return nil, err
	}
	return &sqlast.CastExpr{Expr: arg, TypeName: name}, nil
}

// typeName maps a type descriptor to its T-SQL name.
func typeName(dtype datatypes.DataType) (string, error) {
	switch dtype.Kind {
	case datatypes.KindBoolean:
		return "BIT", nil
	case datatypes.KindInt8:
		return "TINYINT", nil
	case datatypes.KindInt16:
		return "SMALLINT", nil
	case datatypes.KindInt32:
		return "INT", nil
	case datatypes.KindInt64:
		return "BIGINT", nil
	case datatypes.KindFloat32:
		return "REAL", nil
	case datatypes.KindFloat64:
		return "FLOAT", nil
	case datatypes.KindDecimal:
		if dtype.Precision != 0 {
			return fmt.Sprintf("DECIMAL(%d, %d)", dtype.Precision, dtype.Scale), nil
		}
		return "DECIMAL", nil
	case datatypes.KindString:
		return "VARCHAR(max)", nil
	case datatypes.KindBinary:
		return "VARBINARY(max)", nil
	case datatypes.KindDate:
		return "DATE", nil
	case datatypes.KindTime:
		return "TIME", nil
	case datatypes.KindTimestamp:
		if dtype.Timezone != "" {
			return "DATETIMEOFFSET", nil
		}
		return "DATETIME2", nil
	case datatypes.KindUUID:
		return "UNIQUEIDENTIFIER", nil
	}
	return "", fmt.Errorf("%w: cannot cast to %s", lower.ErrUnsupportedArgument, dtype)
}
