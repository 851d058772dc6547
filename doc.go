// Package lispcomb parses a small S-expression language into a tree of
// lisp.Object values. The grammar is assembled from the generic parser
// combinators in the combinator package; there is no hand-written scanner.
//
// BNF:
//  <object>     :: <list> | <string> | <ident> ;
//
//  <list>       :: "(" <ws> ( <object> ( <ws> <object> )* )? <ws> ")" ;
//
//  <string>     :: "\"" <string-char>* "\"" ;
//  <string-char> :: <any char except "\""> ;
//
//  <ident>      :: <ident-char>+ ;
//  <ident-char> :: <any char except whitespace, "(", ")" and "\""> ;
//
//  <ws>         :: <whitespace-char>* ;
//
// example:
//
//   (asd ("asdasd" asd ("asd") asd) "asdasd" ())
package lispcomb
