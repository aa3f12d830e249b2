package token

import "golang.org/x/text/cases"

var foldCaser = cases.Fold()

// keywords maps a lowercased spelling — English or the localized
// (Russian/transliterated) equivalent — to its Kind. Both spellings for a
// keyword map to the same Kind.
var keywords = map[string]Kind{
	"if": IF, "если": IF,
	"then": THEN, "тогда": THEN,
	"elsif": ELSIF, "иначеесли": ELSIF,
	"else": ELSE, "иначе": ELSE,
	"endif": ENDIF, "конецесли": ENDIF,
	"for": FOR, "для": FOR,
	"each": EACH, "каждого": EACH,
	"in": IN, "из": IN,
	"to": TO, "по": TO,
	"while": WHILE, "пока": WHILE,
	"do": DO, "цикл": DO,
	"enddo": ENDDO, "конеццикла": ENDDO,
	"procedure": PROCEDURE, "процедура": PROCEDURE,
	"endprocedure": ENDPROCEDURE, "конецпроцедуры": ENDPROCEDURE,
	"function": FUNCTION, "функция": FUNCTION,
	"endfunction": ENDFUNCTION, "конецфункции": ENDFUNCTION,
	"var": VAR, "перем": VAR,
	"val": VAL, "знач": VAL,
	"return": RETURN, "возврат": RETURN,
	"continue": CONTINUE, "продолжить": CONTINUE,
	"break": BREAK, "прервать": BREAK,
	"and": AND, "и": AND,
	"or": OR, "или": OR,
	"not": NOT, "не": NOT,
	"try": TRY, "попытка": TRY,
	"except": EXCEPT, "исключение": EXCEPT,
	"endtry": ENDTRY, "конецпопытки": ENDTRY,
	"raise": RAISE, "вызватьисключение": RAISE,
	"new": NEW, "новый": NEW,
	"execute": EXECUTE, "выполнить": EXECUTE,
	"export": EXPORT, "экспорт": EXPORT,
	"goto": GOTO, "перейти": GOTO,
	"true": TRUE, "истина": TRUE,
	"false": FALSE, "ложь": FALSE,
	"undefined": UNDEFINED, "неопределено": UNDEFINED,
	"null": NULL,
}

// directives maps lowercased spellings of compilation directives (without
// the leading '&') to their Kind.
var directives = map[string]Kind{
	"atclient": AT_CLIENT, "наклиенте": AT_CLIENT,
	"atserver": AT_SERVER, "насервере": AT_SERVER,
	"atservernocontext": AT_SERVER_NO_CONTEXT, "насерверебезконтекста": AT_SERVER_NO_CONTEXT,
	"atclientatservernocontext": AT_CLIENT_AT_SERVER_NO_CONTEXT,
	"наклиентенасерверебезконтекста":                          AT_CLIENT_AT_SERVER_NO_CONTEXT,
	"atclientatserver": AT_CLIENT_AT_SERVER, "наклиентенасервере": AT_CLIENT_AT_SERVER,
}

// prepInstructions maps lowercased spellings of preprocessor instructions
// (without the leading '#') to their Kind.
var prepInstructions = map[string]Kind{
	"if": PREP_IF, "если": PREP_IF,
	"elsif": PREP_ELSIF, "иначеесли": PREP_ELSIF,
	"else": PREP_ELSE, "иначе": PREP_ELSE,
	"endif": PREP_ENDIF, "конецесли": PREP_ENDIF,
	"region": PREP_REGION, "область": PREP_REGION,
	"endregion": PREP_ENDREGION, "конецобласти": PREP_ENDREGION,
}

// prepSymbols maps lowercased spellings of preprocessor availability
// symbols to their Kind.
var prepSymbols = map[string]Kind{
	"client": PREP_CLIENT, "клиент": PREP_CLIENT,
	"atclient": PREP_AT_CLIENT, "наклиенте": PREP_AT_CLIENT,
	"atserver": PREP_AT_SERVER, "насервере": PREP_AT_SERVER,
	"server": PREP_SERVER, "сервер": PREP_SERVER,
	"externalconnection": PREP_EXTERNAL_CONNECTION, "внешнеесоединение": PREP_EXTERNAL_CONNECTION,
	"thickclientordinaryapplication": PREP_THICK_CLIENT_ORDINARY_APPLICATION,
	"толстыйклиентобычноеприложение":  PREP_THICK_CLIENT_ORDINARY_APPLICATION,
	"thickclientmanagedapplication":   PREP_THICK_CLIENT_MANAGED_APPLICATION,
	"толстыйклиентуправляемоеприложение": PREP_THICK_CLIENT_MANAGED_APPLICATION,
	"thinclient": PREP_THIN_CLIENT, "тонкийклиент": PREP_THIN_CLIENT,
	"webclient": PREP_WEB_CLIENT, "веб-клиент": PREP_WEB_CLIENT,
	"mobileappclient": PREP_MOBILE_APP_CLIENT, "мобильноеприложениеклиент": PREP_MOBILE_APP_CLIENT,
	"mobileappserver": PREP_MOBILE_APP_SERVER, "мобильноеприложениесервер": PREP_MOBILE_APP_SERVER,
}

// Fold case-folds s using golang.org/x/text/cases, the single rule used
// consistently by every case-insensitive lookup in this package (keyword,
// directive, preprocessor, scope, and global-context tables). Unlike
// strings.ToLower, this correctly folds the full Unicode casing tables the
// bilingual (Cyrillic) keyword spellings rely on.
func Fold(s string) string {
	return foldCaser.String(s)
}

// LookupIdent looks up an identifier spelling case-insensitively in the
// keyword table. It returns IDENT (and ok=false) on a miss.
func LookupIdent(lit string) (Kind, bool) {
	k, ok := keywords[Fold(lit)]
	if !ok {
		return IDENT, false
	}
	return k, true
}

// LookupDirective looks up a directive name (without '&') case-insensitively.
func LookupDirective(name string) (Kind, bool) {
	k, ok := directives[Fold(name)]
	return k, ok
}

// LookupPrepInstruction looks up a preprocessor instruction name (without '#').
func LookupPrepInstruction(name string) (Kind, bool) {
	k, ok := prepInstructions[Fold(name)]
	return k, ok
}

// LookupPrepSymbol looks up a preprocessor availability symbol name.
func LookupPrepSymbol(name string) (Kind, bool) {
	k, ok := prepSymbols[Fold(name)]
	return k, ok
}
