package srclang

// Expr is the closed family of expression node kinds. Adding a kind
// means adding a method to ExprVisitor, which breaks every existing
// visitor until it implements it.
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

type ExprVisitor interface {
	VisitBinaryExpr(expr *BinaryExpr) (interface{}, error)
	VisitUnaryExpr(expr *UnaryExpr) (interface{}, error)
	VisitLiteralExpr(expr *LiteralExpr) (interface{}, error)
	VisitVariableExpr(expr *VariableExpr) (interface{}, error)
	VisitCallExpr(expr *CallExpr) (interface{}, error)
	VisitGetExpr(expr *GetExpr) (interface{}, error)
	VisitAssignExpr(expr *AssignExpr) (interface{}, error)
	VisitSetExpr(expr *SetExpr) (interface{}, error)
}

// BinaryExpr.Operator.Kind is always one of PLUS, MINUS, MULTIPLY, DIVIDE.
type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (e *BinaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// UnaryExpr.Operator.Kind is always MINUS.
type UnaryExpr struct {
	Operator Token
	Right    Expr
}

func (e *UnaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// LiteralKind selects which field of a LiteralExpr is meaningful.
type LiteralKind int

const (
	LiteralNull LiteralKind = iota
	LiteralNumber
	LiteralString
	LiteralBool
)

type LiteralExpr struct {
	Kind   LiteralKind
	Number float64
	Str    string
	Bool   bool
}

func (e *LiteralExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

type VariableExpr struct {
	Name Token
}

func (e *VariableExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

type CallExpr struct {
	Callee Expr
	Paren  Token
	Args   []Expr
}

func (e *CallExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// GetExpr is member access, e.g. `object.name`.
type GetExpr struct {
	Object Expr
	Name   Token
}

func (e *GetExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGetExpr(e) }

// AssignExpr is produced only from an L-value parsed as VariableExpr.
type AssignExpr struct {
	Name  Token
	Value Expr
}

func (e *AssignExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// SetExpr is produced only from an L-value parsed as GetExpr.
type SetExpr struct {
	Object Expr
	Name   Token
	Value  Expr
}

func (e *SetExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSetExpr(e) }

// Stmt is the closed family of statement node kinds.
type Stmt interface {
	Accept(v StmtVisitor) (interface{}, error)
}

type StmtVisitor interface {
	VisitVarStmt(stmt *VarStmt) (interface{}, error)
	VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error)
	VisitPrintStmt(stmt *PrintStmt) (interface{}, error)
	VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error)
	VisitReturnStmt(stmt *ReturnStmt) (interface{}, error)
}

// VarStmt.Initializer is a LiteralExpr with Kind LiteralNull when the
// source declares the variable with no initializer.
type VarStmt struct {
	Name        Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitVarStmt(s) }

type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitExpressionStmt(s) }

type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitPrintStmt(s) }

type FunctionStmt struct {
	Name   Token
	Params []Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitFunctionStmt(s) }

// ReturnStmt.Value is nil iff the source token after `return` is END.
type ReturnStmt struct {
	Keyword Token
	Value   Expr
}

func (s *ReturnStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitReturnStmt(s) }
