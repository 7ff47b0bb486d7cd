package ast

// ConcurrentStmt is a statement of an architecture or generate body.
type ConcurrentStmt interface {
	Row
	concurrentNode()
}

// SequentialStmt is a statement of a process or subprogram body.
type SequentialStmt interface {
	Row
	sequentialNode()
}

// Waveform is a comma separated list of elements; "after" elements are *BinaryExpr.
type Waveform []Expr

// CondWaveform is one arm of "a when c else b"; Cond is nil for the final arm.
type CondWaveform struct {
	Waveform Waveform
	Cond     Expr
}

// SelectedWaveform is one arm of a selected assignment: waveform when choices.
type SelectedWaveform struct {
	Waveform Waveform
	Choices  []Expr
}

// ConcurrentAssign: [label:] target <= waveform [when cond else waveform ...];
type ConcurrentAssign struct {
	Trivia
	Label     string
	Target    Expr
	Waveforms []CondWaveform
}

// SelectedAssign: [label:] with sel select target <= w when c, ...;
type SelectedAssign struct {
	Trivia
	Label    string
	Selector Expr
	Target   Expr
	Arms     []SelectedWaveform
}

// Process: [label:] process [(sensitivity)] [is] decls begin stmts end process [label];
type Process struct {
	Trivia
	Label       string
	Postponed   bool
	Sensitivity []Expr // "all" is a single keyword TokenExpr
	HasIs       bool
	Decls       []Declaration
	DeclTail    []Comment
	Stmts       []SequentialStmt
	EndLabel    string
	Tail        []Comment
}

// Instance: label : [entity|component|configuration] unit [generic map (...)] [port map (...)];
type Instance struct {
	Trivia
	Label      string
	UnitKind   string // source spelling of entity/component/configuration, or ""
	Unit       Expr
	Arch       string // entity work.e(arch)
	GenericMap *AssocList
	PortMap    *AssocList
}

// AssocList is the parenthesised body of a generic map or port map.
type AssocList struct {
	Items []*Association
	Tail  []Comment
}

// Association: [choices =>] actual. Used by maps, calls and aggregates.
type Association struct {
	Trivia
	Choices []Expr // formal part; several choices are joined with |
	Actual  Expr
}

// GenerateBody is the region inside a generate statement.
type GenerateBody struct {
	Decls    []Declaration
	HasBegin bool
	Stmts    []ConcurrentStmt
	Tail     []Comment
}

// ForGenerate: label : for i in range generate body end generate [label];
type ForGenerate struct {
	Trivia
	Label    string
	Param    string
	Range    Expr
	Body     GenerateBody
	EndLabel string
}

// GenerateBranch is one arm of an if generate; Cond is nil for else.
type GenerateBranch struct {
	Cond Expr
	Body GenerateBody
}

// IfGenerate: label : if c generate ... [elsif c generate ...] [else generate ...] end generate;
type IfGenerate struct {
	Trivia
	Label    string
	Branches []GenerateBranch
	EndLabel string
}

// SignalAssign: [label:] target <= waveform [when c else ...];  (sequential)
type SignalAssign struct {
	Trivia
	Label     string
	Target    Expr
	Waveforms []CondWaveform
}

// VarAssign: [label:] target := value;
type VarAssign struct {
	Trivia
	Label  string
	Target Expr
	Value  Expr
}

// IfBranch is one arm of an if statement; Cond is nil for else.
type IfBranch struct {
	Cond  Expr
	Stmts []SequentialStmt
	Tail  []Comment
}

type IfStmt struct {
	Trivia
	Label    string
	Branches []IfBranch
	EndLabel string
}

// CaseAlt: when choices => stmts
type CaseAlt struct {
	Trivia
	Choices []Expr
	Stmts   []SequentialStmt
}

type CaseStmt struct {
	Trivia
	Label    string
	Matching bool // case?
	Selector Expr
	Alts     []*CaseAlt
	EndLabel string
	Tail     []Comment
}

// ForLoop: [label:] for i in range loop stmts end loop [label];
type ForLoop struct {
	Trivia
	Label    string
	Param    string
	Range    Expr
	Stmts    []SequentialStmt
	EndLabel string
	Tail     []Comment
}

// WhileLoop: [label:] while cond loop stmts end loop [label];
type WhileLoop struct {
	Trivia
	Label    string
	Cond     Expr
	Stmts    []SequentialStmt
	EndLabel string
	Tail     []Comment
}

// Loop is the plain infinite loop.
type Loop struct {
	Trivia
	Label    string
	Stmts    []SequentialStmt
	EndLabel string
	Tail     []Comment
}

// LoopControl: next|exit [loop_label] [when cond];
type LoopControl struct {
	Trivia
	Label     string
	Keyword   string
	LoopLabel string
	Cond      Expr
}

type ReturnStmt struct {
	Trivia
	Label string
	Value Expr
}

type NullStmt struct {
	Trivia
	Label string
}

// WaitStmt: wait [on sigs] [until cond] [for time];
type WaitStmt struct {
	Trivia
	Label string
	On    []Expr
	Until Expr
	For   Expr
}

// ReportStmt: report msg [severity level];
type ReportStmt struct {
	Trivia
	Label    string
	Message  Expr
	Severity Expr
}

// AssertStmt is valid both as a concurrent and as a sequential statement.
type AssertStmt struct {
	Trivia
	Label     string
	Postponed bool
	Cond      Expr
	Report    Expr
	Severity  Expr
}

// ProcedureCall is valid both as a concurrent and as a sequential statement.
type ProcedureCall struct {
	Trivia
	Label string
	Call  Expr
}

func (*ConcurrentAssign) concurrentNode() {}
func (*SelectedAssign) concurrentNode()   {}
func (*Process) concurrentNode()          {}
func (*Instance) concurrentNode()         {}
func (*ForGenerate) concurrentNode()      {}
func (*IfGenerate) concurrentNode()       {}
func (*AssertStmt) concurrentNode()       {}
func (*ProcedureCall) concurrentNode()    {}

func (*SignalAssign) sequentialNode()  {}
func (*VarAssign) sequentialNode()     {}
func (*IfStmt) sequentialNode()        {}
func (*CaseStmt) sequentialNode()      {}
func (*ForLoop) sequentialNode()       {}
func (*WhileLoop) sequentialNode()     {}
func (*Loop) sequentialNode()          {}
func (*LoopControl) sequentialNode()   {}
func (*ReturnStmt) sequentialNode()    {}
func (*NullStmt) sequentialNode()      {}
func (*WaitStmt) sequentialNode()      {}
func (*ReportStmt) sequentialNode()    {}
func (*AssertStmt) sequentialNode()    {}
func (*ProcedureCall) sequentialNode() {}
